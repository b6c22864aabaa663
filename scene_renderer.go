// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image/color"

	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/scene"
)

// SceneRenderer draws into a retained scene through a scene.Target.
// The target carries the device pixel clip; the scene carries the scale.
type SceneRenderer struct {
	target scene.Target
	theme  Theme
}

var _ Renderer = (*SceneRenderer)(nil)

// NewSceneRenderer returns a renderer drawing into target.
func NewSceneRenderer(target scene.Target, theme Theme) *SceneRenderer {
	return &SceneRenderer{target: target, theme: theme}
}

func (*SceneRenderer) renderer() {}

// Target returns the scene target this renderer draws through.
func (r *SceneRenderer) Target() scene.Target {
	return r.target
}

func (r *SceneRenderer) Size() geom.LogicalSize {
	return r.ClipBounds().Size
}

func (r *SceneRenderer) Scale() geom.Scale {
	if s := r.target.Scene(); s != nil {
		return s.Scale()
	}
	return geom.Scale{}
}

func (r *SceneRenderer) Theme() Theme {
	return r.theme
}

func (r *SceneRenderer) ClipBounds() geom.LogicalRect {
	return r.Scale().RectToScaled(r.target.Clip())
}

func (r *SceneRenderer) ClipTo(bounds geom.LogicalRect) Renderer {
	return &SceneRenderer{
		target: r.target.ClipTo(r.Scale().RectToPixels(bounds)),
		theme:  r.theme,
	}
}

func (r *SceneRenderer) FillRect(rect geom.LogicalRect, c color.Color) {
	r.target.FillRect(r.Scale().RectToPixels(rect), resolveColor(c))
}

func (r *SceneRenderer) StrokeRect(rect geom.LogicalRect, opts StrokeOptions) {
	s := r.Scale()
	r.target.StrokeRect(s.RectToPixels(rect), resolveColor(opts.Color), s.LengthToPixels(opts.lineWidth()))
}

func (r *SceneRenderer) StrokeLine(a, b geom.LogicalPoint, opts StrokeOptions) {
	s := r.Scale()
	r.target.StrokeLine(s.PointToPixels(a), s.PointToPixels(b), resolveColor(opts.Color), s.LengthToPixels(opts.lineWidth()))
}

func (r *SceneRenderer) RenderText(text string, baseline geom.LogicalPoint, opts TextOptions) {
	s := r.Scale()
	r.target.FillText(normalizeText(text), s.PointToPixels(baseline), opts.font(s), resolveColor(opts.Color))
}

func (r *SceneRenderer) MeasureText(text string, opts TextOptions) TextMetrics {
	s := r.Scale()
	m := r.target.MeasureText(normalizeText(text), opts.font(s))
	return metricsToScaled(s, m.Width, m.Ascent, m.Descent, m.LineGap)
}

func (r *SceneRenderer) DrawImage(img *Image, location geom.LogicalPoint) {
	src, ok := img.Surface()
	if !ok {
		return
	}
	rect := geom.LogicalRect{Origin: location, Size: img.Size()}
	r.target.DrawImage(src, r.Scale().RectToPixels(rect))
}
