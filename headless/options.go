// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"image"
	"math"

	"github.com/gogpu/canvas"
)

// Option configures a Window.
type Option func(*options)

type options struct {
	dpr       float64
	theme     canvas.Theme
	onPresent func(canvas.WidgetID, image.Image)
}

func applyOptions(opts []Option) options {
	o := options{dpr: 1, theme: canvas.ThemeLight}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDevicePixelRatio sets the device pixels per logical unit.
// Non-positive or non-finite ratios are ignored.
func WithDevicePixelRatio(dpr float64) Option {
	return func(o *options) {
		if dpr > 0 && !math.IsInf(dpr, 0) {
			o.dpr = dpr
		}
	}
}

// WithTheme sets the initial theme.
func WithTheme(t canvas.Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithPresentHook registers fn to receive every presented frame, for
// example a present.Presenter's Present method.
func WithPresentHook(fn func(canvas.WidgetID, image.Image)) Option {
	return func(o *options) {
		o.onPresent = fn
	}
}
