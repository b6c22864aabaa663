// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image/color"

	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/internal/logging"
	"github.com/gogpu/canvas/surface"
)

// SurfaceRenderer draws into the native 2D context of a document element.
//
// The element is looked up by widget id on every call, since the host may
// have torn it down or replaced it since the frame began. Each primitive is
// bracketed by Save and Restore so that no clip, transform or style state
// leaks between calls sharing the context.
type SurfaceRenderer struct {
	doc   surface.Document
	id    WidgetID
	clip  geom.PixelRect
	scale geom.Scale
	theme Theme
}

var _ Renderer = (*SurfaceRenderer)(nil)

// NewSurfaceRenderer returns a renderer for the element of widget id in
// doc, clipped to clip in device pixels.
func NewSurfaceRenderer(doc surface.Document, id WidgetID, clip geom.PixelRect, scale geom.Scale, theme Theme) *SurfaceRenderer {
	return &SurfaceRenderer{doc: doc, id: id, clip: clip, scale: scale, theme: theme}
}

func (*SurfaceRenderer) renderer() {}

// WidgetID returns the widget whose element this renderer draws into.
func (r *SurfaceRenderer) WidgetID() WidgetID {
	return r.id
}

func (r *SurfaceRenderer) Size() geom.LogicalSize {
	return r.ClipBounds().Size
}

func (r *SurfaceRenderer) Scale() geom.Scale {
	return r.scale
}

func (r *SurfaceRenderer) Theme() Theme {
	return r.theme
}

func (r *SurfaceRenderer) ClipBounds() geom.LogicalRect {
	return r.scale.RectToScaled(r.clip)
}

func (r *SurfaceRenderer) ClipTo(bounds geom.LogicalRect) Renderer {
	next := *r
	next.clip = r.clip.Intersect(r.scale.RectToPixels(bounds))
	return &next
}

func (r *SurfaceRenderer) FillRect(rect geom.LogicalRect, c color.Color) {
	px := r.scale.RectToPixels(rect)
	r.draw(func(ctx surface.Context2D) {
		ctx.SetFillColor(resolveColor(c))
		ctx.FillRect(px.Origin.X, px.Origin.Y, px.Size.Width, px.Size.Height)
	})
}

func (r *SurfaceRenderer) StrokeRect(rect geom.LogicalRect, opts StrokeOptions) {
	px := r.scale.RectToPixels(rect)
	r.draw(func(ctx surface.Context2D) {
		ctx.SetStrokeColor(resolveColor(opts.Color))
		ctx.SetLineWidth(r.scale.LengthToPixels(opts.lineWidth()))
		ctx.StrokeRect(px.Origin.X, px.Origin.Y, px.Size.Width, px.Size.Height)
	})
}

func (r *SurfaceRenderer) StrokeLine(a, b geom.LogicalPoint, opts StrokeOptions) {
	pa, pb := r.scale.PointToPixels(a), r.scale.PointToPixels(b)
	r.draw(func(ctx surface.Context2D) {
		ctx.SetStrokeColor(resolveColor(opts.Color))
		ctx.SetLineWidth(r.scale.LengthToPixels(opts.lineWidth()))
		ctx.BeginPath()
		ctx.MoveTo(pa.X, pa.Y)
		ctx.LineTo(pb.X, pb.Y)
		ctx.Stroke()
	})
}

func (r *SurfaceRenderer) RenderText(text string, baseline geom.LogicalPoint, opts TextOptions) {
	p := r.scale.PointToPixels(baseline)
	f := opts.font(r.scale)
	text = normalizeText(text)
	r.draw(func(ctx surface.Context2D) {
		ctx.SetFont(f.Family, f.Size)
		ctx.SetFillColor(resolveColor(opts.Color))
		ctx.FillText(text, p.X, p.Y)
	})
}

func (r *SurfaceRenderer) MeasureText(text string, opts TextOptions) TextMetrics {
	ctx, ok := r.context()
	if !ok {
		return TextMetrics{}
	}
	f := opts.font(r.scale)
	ctx.Save()
	defer ctx.Restore()
	ctx.SetFont(f.Family, f.Size)
	m := ctx.MeasureText(normalizeText(text))
	return metricsToScaled(r.scale, m.Width, m.Ascent, m.Descent, m.LineGap)
}

func (r *SurfaceRenderer) DrawImage(img *Image, location geom.LogicalPoint) {
	src, ok := img.Surface()
	if !ok {
		return
	}
	px := r.scale.RectToPixels(geom.LogicalRect{Origin: location, Size: img.Size()})
	r.draw(func(ctx surface.Context2D) {
		ctx.DrawImage(src, px.Origin.X, px.Origin.Y, px.Size.Width, px.Size.Height)
	})
}

// draw runs one primitive inside a save/clip/translate/restore bracket.
func (r *SurfaceRenderer) draw(primitive func(ctx surface.Context2D)) {
	ctx, ok := r.context()
	if !ok {
		return
	}
	ctx.Save()
	defer ctx.Restore()

	c := r.clip
	ctx.BeginPath()
	ctx.Rect(c.Origin.X, c.Origin.Y, c.Size.Width, c.Size.Height)
	ctx.Clip()
	ctx.Translate(c.Origin.X, c.Origin.Y)
	primitive(ctx)
}

func (r *SurfaceRenderer) context() (surface.Context2D, bool) {
	if r.doc == nil {
		return nil, false
	}
	el, ok := r.doc.Lookup(r.id.CSSID())
	if !ok {
		logging.L().Debug("canvas: surface element not found", "id", r.id.CSSID())
		return nil, false
	}
	return el.Context2D()
}
