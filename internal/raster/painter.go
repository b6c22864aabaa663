// Package raster paints single primitives into an RGBA frame with exact
// rectangular clipping.
//
// Each primitive is rasterized by gg into a scratch context the size of its
// clip rectangle and then composited source-over into the destination, so
// nothing a primitive draws can land outside its clip, whatever the
// primitive is (fills, strokes with caps, glyphs).
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/canvas/fonts"
	"github.com/gogpu/canvas/internal/logging"
)

// Painter draws into an *image.RGBA. All coordinates are absolute device
// pixels. A Painter is not safe for concurrent use.
type Painter struct {
	dst     *image.RGBA
	fonts   *fonts.Registry
	scratch *gg.Context
}

// NewPainter returns a Painter drawing into dst. A nil registry uses
// fonts.Default.
func NewPainter(dst *image.RGBA, reg *fonts.Registry) *Painter {
	if reg == nil {
		reg = fonts.Default()
	}
	return &Painter{dst: dst, fonts: reg}
}

// Target returns the destination image.
func (p *Painter) Target() *image.RGBA {
	return p.dst
}

// SetTarget replaces the destination image.
func (p *Painter) SetTarget(dst *image.RGBA) {
	p.dst = dst
}

// Fonts returns the registry used for text.
func (p *Painter) Fonts() *fonts.Registry {
	return p.fonts
}

// ClipRect converts a floating point pixel rectangle into the integer clip
// used for compositing. Edges are rounded to the nearest pixel so that
// adjacent clips tile without gaps or overlap.
func ClipRect(x, y, w, h float64) image.Rectangle {
	if !(w > 0) || !(h > 0) {
		return image.Rectangle{}
	}
	r := image.Rect(round(x), round(y), round(x+w), round(y+h))
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

// Clear replaces every pixel of the destination with c.
func (p *Painter) Clear(c color.Color) {
	if p.dst == nil {
		return
	}
	if c == nil {
		c = color.Transparent
	}
	xdraw.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

// ClearRect resets the pixels of the rectangle (x, y, w, h) inside clip to
// transparent.
func (p *Painter) ClearRect(clip image.Rectangle, x, y, w, h float64) {
	if p.dst == nil {
		return
	}
	r := ClipRect(x, y, w, h).Intersect(clip).Intersect(p.dst.Bounds())
	if r.Empty() {
		return
	}
	xdraw.Draw(p.dst, r, image.Transparent, image.Point{}, xdraw.Src)
}

// FillRect fills the rectangle (x, y, w, h) with c inside clip.
func (p *Painter) FillRect(clip image.Rectangle, x, y, w, h float64, c color.Color) {
	p.paint(clip, func(dc *gg.Context, off image.Point) error {
		dc.SetColor(solid(c))
		dc.DrawRectangle(x-float64(off.X), y-float64(off.Y), w, h)
		return dc.Fill()
	})
}

// StrokeRect outlines the rectangle (x, y, w, h) with a line of width
// pixels centred on its edges.
func (p *Painter) StrokeRect(clip image.Rectangle, x, y, w, h float64, c color.Color, width float64) {
	p.paint(clip, func(dc *gg.Context, off image.Point) error {
		dc.SetColor(solid(c))
		dc.SetLineWidth(width)
		dc.DrawRectangle(x-float64(off.X), y-float64(off.Y), w, h)
		return dc.Stroke()
	})
}

// StrokePolyline strokes the open polyline through pts.
func (p *Painter) StrokePolyline(clip image.Rectangle, pts []Point, c color.Color, width float64) {
	if len(pts) < 2 {
		return
	}
	p.paint(clip, func(dc *gg.Context, off image.Point) error {
		dc.SetColor(solid(c))
		dc.SetLineWidth(width)
		ox, oy := float64(off.X), float64(off.Y)
		dc.MoveTo(pts[0].X-ox, pts[0].Y-oy)
		for _, pt := range pts[1:] {
			dc.LineTo(pt.X-ox, pt.Y-oy)
		}
		return dc.Stroke()
	})
}

// StrokeLine strokes the segment from (x1, y1) to (x2, y2).
func (p *Painter) StrokeLine(clip image.Rectangle, x1, y1, x2, y2 float64, c color.Color, width float64) {
	p.StrokePolyline(clip, []Point{{x1, y1}, {x2, y2}}, c, width)
}

// FillText draws s with its baseline starting at (x, y).
func (p *Painter) FillText(clip image.Rectangle, s string, x, y float64, f Font, c color.Color) {
	if s == "" {
		return
	}
	face, ok := p.fonts.Face(f.Family, f.Size)
	if !ok {
		return
	}
	p.paint(clip, func(dc *gg.Context, off image.Point) error {
		dc.SetFont(face)
		dc.SetColor(solid(c))
		dc.DrawString(s, x-float64(off.X), y-float64(off.Y))
		return nil
	})
}

// MeasureText returns the metrics of s in pixels. Unknown fonts measure as
// zero.
func (p *Painter) MeasureText(s string, f Font) Metrics {
	return Measure(p.fonts, s, f)
}

// DrawImage draws img scaled into the rectangle (x, y, w, h).
func (p *Painter) DrawImage(clip image.Rectangle, img image.Image, x, y, w, h float64) {
	if img == nil || p.dst == nil {
		return
	}
	clip = clip.Intersect(p.dst.Bounds())
	if clip.Empty() {
		return
	}
	dr := image.Rect(round(x), round(y), round(x+w), round(y+h))
	if dr.Empty() {
		return
	}
	target, ok := p.dst.SubImage(clip).(*image.RGBA)
	if !ok {
		return
	}
	sb := img.Bounds()
	if dr.Size() == sb.Size() {
		xdraw.Draw(target, dr, img, sb.Min, xdraw.Over)
		return
	}
	xdraw.BiLinear.Scale(target, dr, img, sb, xdraw.Over, nil)
}

// paint runs fn against a cleared scratch context covering clip, then
// composites the result into the destination.
func (p *Painter) paint(clip image.Rectangle, fn func(dc *gg.Context, off image.Point) error) {
	if p.dst == nil {
		return
	}
	clip = clip.Intersect(p.dst.Bounds())
	if clip.Empty() {
		return
	}
	dc := p.scratchContext(clip.Dx(), clip.Dy())
	if err := fn(dc, clip.Min); err != nil {
		logging.L().Debug("raster: primitive dropped", "err", err)
		return
	}
	xdraw.Draw(p.dst, clip, dc.Image(), image.Point{}, xdraw.Over)
}

func (p *Painter) scratchContext(w, h int) *gg.Context {
	if p.scratch == nil {
		p.scratch = gg.NewContext(w, h)
		return p.scratch
	}
	if p.scratch.Width() != w || p.scratch.Height() != h {
		if err := p.scratch.Resize(w, h); err != nil {
			p.scratch = gg.NewContext(w, h)
			return p.scratch
		}
	}
	p.scratch.ClearPath()
	p.scratch.Clear()
	return p.scratch
}

func solid(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}

func round(v float64) int {
	return int(math.Round(v))
}
