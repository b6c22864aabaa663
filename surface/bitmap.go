// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/canvas/fonts"
	"github.com/gogpu/canvas/internal/raster"
)

// Default drawing state, as a freshly sized HTML canvas has it.
const (
	defaultFontFamily = fonts.SansSerif
	defaultFontSize   = 10
	defaultLineWidth  = 1
)

// Bitmap is an Element whose backing store is an in-memory RGBA image.
// Its drawing context rasterizes with gg.
//
// Element methods are safe for concurrent use; the drawing context is not.
type Bitmap struct {
	id, class, style string

	mu       sync.Mutex
	clientW  float64
	clientH  float64
	removed  bool
	ctx      *bitmapContext
	registry *fonts.Registry
}

// NewBitmap returns an element with an empty backing store.
func NewBitmap(id, class, style string) *Bitmap {
	b := &Bitmap{id: id, class: class, style: style, registry: fonts.Default()}
	b.ctx = newBitmapContext(image.NewRGBA(image.Rectangle{}), b.registry)
	return b
}

// SetFonts replaces the font registry used by the drawing context.
func (b *Bitmap) SetFonts(reg *fonts.Registry) {
	if reg == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.registry = reg
	b.ctx = newBitmapContext(b.ctx.painter.Target(), reg)
}

func (b *Bitmap) ID() string    { return b.id }
func (b *Bitmap) Class() string { return b.class }
func (b *Bitmap) Style() string { return b.style }

// ClientSize reports the laid out size in CSS pixels.
func (b *Bitmap) ClientSize() (w, h float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clientW, b.clientH
}

// SetClientSize sets the laid out size, as a layout pass would.
func (b *Bitmap) SetClientSize(w, h float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clientW, b.clientH = w, h
}

// PixelSize reports the backing store dimensions.
func (b *Bitmap) PixelSize() (w, h int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := b.ctx.painter.Target().Bounds()
	return r.Dx(), r.Dy()
}

// SetPixelSize replaces the backing store with a transparent one of the
// given size and resets the drawing state.
func (b *Bitmap) SetPixelSize(w, h int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ctx = newBitmapContext(image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))), b.registry)
}

// Context2D returns the drawing context, or false once the element has been
// removed from its document.
func (b *Bitmap) Context2D() (Context2D, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.removed {
		return nil, false
	}
	return b.ctx, true
}

// Image returns the backing store. It is replaced by SetPixelSize.
func (b *Bitmap) Image() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctx.painter.Target()
}

func (b *Bitmap) detach() {
	b.mu.Lock()
	b.removed = true
	b.mu.Unlock()
}

type drawState struct {
	clip      image.Rectangle
	tx, ty    float64
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	font      raster.Font
}

type subpath struct {
	rect   bool
	points []raster.Point
}

type bitmapContext struct {
	painter *raster.Painter
	state   drawState
	stack   []drawState
	path    []subpath
}

func newBitmapContext(dst *image.RGBA, reg *fonts.Registry) *bitmapContext {
	return &bitmapContext{
		painter: raster.NewPainter(dst, reg),
		state: drawState{
			clip:      dst.Bounds(),
			fill:      color.Black,
			stroke:    color.Black,
			lineWidth: defaultLineWidth,
			font:      raster.Font{Family: defaultFontFamily, Size: defaultFontSize},
		},
	}
}

func (c *bitmapContext) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *bitmapContext) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *bitmapContext) BeginPath() {
	c.path = c.path[:0]
}

func (c *bitmapContext) Rect(x, y, w, h float64) {
	x, y = c.apply(x, y)
	c.path = append(c.path, subpath{rect: true, points: []raster.Point{{X: x, Y: y}, {X: x + w, Y: y + h}}})
}

func (c *bitmapContext) MoveTo(x, y float64) {
	x, y = c.apply(x, y)
	c.path = append(c.path, subpath{points: []raster.Point{{X: x, Y: y}}})
}

func (c *bitmapContext) LineTo(x, y float64) {
	if len(c.path) == 0 || c.path[len(c.path)-1].rect {
		c.MoveTo(x, y)
		return
	}
	x, y = c.apply(x, y)
	last := &c.path[len(c.path)-1]
	last.points = append(last.points, raster.Point{X: x, Y: y})
}

// Clip narrows the clip to the bounding box of the rectangles in the
// current path. A path without rectangles clips everything away.
func (c *bitmapContext) Clip() {
	var box image.Rectangle
	for _, sp := range c.path {
		if !sp.rect {
			continue
		}
		a, b := sp.points[0], sp.points[1]
		r := raster.ClipRect(min(a.X, b.X), min(a.Y, b.Y), math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))
		box = box.Union(r)
	}
	c.state.clip = c.state.clip.Intersect(box)
}

func (c *bitmapContext) Stroke() {
	for _, sp := range c.path {
		if sp.rect {
			a, b := sp.points[0], sp.points[1]
			c.painter.StrokeRect(c.state.clip, a.X, a.Y, b.X-a.X, b.Y-a.Y, c.state.stroke, c.state.lineWidth)
			continue
		}
		c.painter.StrokePolyline(c.state.clip, sp.points, c.state.stroke, c.state.lineWidth)
	}
}

func (c *bitmapContext) Translate(x, y float64) {
	c.state.tx += x
	c.state.ty += y
}

func (c *bitmapContext) SetFillColor(col color.Color)   { c.state.fill = orBlack(col) }
func (c *bitmapContext) SetStrokeColor(col color.Color) { c.state.stroke = orBlack(col) }

func (c *bitmapContext) SetLineWidth(w float64) {
	// Non-positive widths are ignored, as in the browser.
	if w > 0 {
		c.state.lineWidth = w
	}
}

func (c *bitmapContext) SetFont(family string, size float64) {
	if family == "" {
		family = defaultFontFamily
	}
	if size <= 0 {
		return
	}
	c.state.font = raster.Font{Family: family, Size: size}
}

func (c *bitmapContext) ClearRect(x, y, w, h float64) {
	x, y = c.apply(x, y)
	c.painter.ClearRect(c.state.clip, x, y, w, h)
}

func (c *bitmapContext) FillRect(x, y, w, h float64) {
	x, y = c.apply(x, y)
	c.painter.FillRect(c.state.clip, x, y, w, h, c.state.fill)
}

func (c *bitmapContext) StrokeRect(x, y, w, h float64) {
	x, y = c.apply(x, y)
	c.painter.StrokeRect(c.state.clip, x, y, w, h, c.state.stroke, c.state.lineWidth)
}

func (c *bitmapContext) FillText(s string, x, y float64) {
	x, y = c.apply(x, y)
	c.painter.FillText(c.state.clip, s, x, y, c.state.font, c.state.fill)
}

func (c *bitmapContext) MeasureText(s string) TextMetrics {
	m := c.painter.MeasureText(s, c.state.font)
	return TextMetrics{Width: m.Width, Ascent: m.Ascent, Descent: m.Descent, LineGap: m.LineGap}
}

func (c *bitmapContext) DrawImage(img image.Image, x, y, w, h float64) {
	x, y = c.apply(x, y)
	c.painter.DrawImage(c.state.clip, img, x, y, w, h)
}

func (c *bitmapContext) apply(x, y float64) (float64, float64) {
	return x + c.state.tx, y + c.state.ty
}

func orBlack(col color.Color) color.Color {
	if col == nil {
		return color.Black
	}
	return col
}
