// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image/color"

	"github.com/gogpu/canvas/fonts"
)

// Option configures a backend.
//
// Example:
//
//	b := canvas.NewSceneBackend(host,
//	    canvas.WithFonts(reg),
//	    canvas.WithClearColor(colornames.White))
type Option func(*options)

type options struct {
	fonts *fonts.Registry
	clear color.Color
}

func defaultOptions() options {
	return options{
		fonts: fonts.Default(),
		clear: nil,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithFonts sets the font registry used to draw and measure text. The
// browser resolves families itself and ignores it.
func WithFonts(reg *fonts.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.fonts = reg
		}
	}
}

// WithClearColor sets the color each frame starts from. The default is
// transparent.
func WithClearColor(c color.Color) Option {
	return func(o *options) {
		o.clear = c
	}
}
