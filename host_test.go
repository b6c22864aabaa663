// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/canvas/frame"
	"github.com/gogpu/canvas/surface"
)

// fakeHost is a SceneHost driven by a frame.Loop.
type fakeHost struct {
	*frame.Loop

	mu        sync.Mutex
	dpr       float64
	theme     Theme
	w, h      int
	live      bool
	listeners map[int]func()
	nextID    int
	presented map[WidgetID]image.Image
	presents  int
	registry  *surface.Registry
}

func newFakeHost(w, h int, dpr float64) *fakeHost {
	return &fakeHost{
		Loop:      frame.NewLoop(),
		dpr:       dpr,
		w:         w,
		h:         h,
		live:      true,
		listeners: make(map[int]func()),
		presented: make(map[WidgetID]image.Image),
	}
}

func (h *fakeHost) DevicePixelRatio() float64 { return h.dpr }
func (h *fakeHost) Theme() Theme              { return h.theme }

func (h *fakeHost) OnResize(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

func (h *fakeHost) listenerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// doc returns a registry whose bitmaps are laid out to fill the viewport.
func (h *fakeHost) doc() *surface.Registry {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.registry == nil {
		h.registry = surface.NewRegistry(func(id, class, style string) (surface.Element, error) {
			b := surface.NewBitmap(id, class, style)
			w, ht, _ := h.ViewportSize()
			b.SetClientSize(float64(w)/h.dpr, float64(ht)/h.dpr)
			return b, nil
		})
	}
	return h.registry
}

// resizeAll changes the viewport, lays out the registry's elements again
// and notifies listeners, as a window would.
func (h *fakeHost) resizeAll(w, ht int) {
	h.mu.Lock()
	h.w, h.h = w, ht
	reg := h.registry
	h.mu.Unlock()

	if reg != nil {
		reg.Each(func(el surface.Element) {
			if b, ok := el.(*surface.Bitmap); ok {
				b.SetClientSize(float64(w)/h.dpr, float64(ht)/h.dpr)
			}
		})
	}

	h.mu.Lock()
	fns := make([]func(), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (h *fakeHost) ViewportSize() (int, int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.w, h.h, h.live
}

func (h *fakeHost) Present(id WidgetID, img image.Image) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.presented[id] = img
	h.presents++
}

func (h *fakeHost) frameFor(id WidgetID) *image.RGBA {
	h.mu.Lock()
	defer h.mu.Unlock()
	img, _ := h.presented[id].(*image.RGBA)
	return img
}

// bitmapDocument returns a registry whose elements report a fixed client
// size.
func bitmapDocument(w, h float64) *surface.Registry {
	return surface.NewRegistry(func(id, class, style string) (surface.Element, error) {
		b := surface.NewBitmap(id, class, style)
		b.SetClientSize(w, h)
		return b, nil
	})
}

func bitmapFor(doc *surface.Registry, w *Widget) *image.RGBA {
	el, ok := doc.Lookup(w.ID().CSSID())
	if !ok {
		return nil
	}
	return el.(*surface.Bitmap).Image()
}

func countPainted(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

var red = color.RGBA{255, 0, 0, 255}

// call is one recorded Context2D call.
type call struct {
	name string
	args []float64
}

// recordingContext is a Context2D that records calls.
type recordingContext struct {
	calls []call
	depth int
}

func (c *recordingContext) add(name string, args ...float64) {
	c.calls = append(c.calls, call{name: name, args: args})
}

func (c *recordingContext) names() []string {
	out := make([]string, len(c.calls))
	for i, cl := range c.calls {
		out[i] = cl.name
	}
	return out
}

func (c *recordingContext) Save()                        { c.depth++; c.add("Save") }
func (c *recordingContext) Restore()                     { c.depth--; c.add("Restore") }
func (c *recordingContext) BeginPath()                   { c.add("BeginPath") }
func (c *recordingContext) Rect(x, y, w, h float64)      { c.add("Rect", x, y, w, h) }
func (c *recordingContext) MoveTo(x, y float64)          { c.add("MoveTo", x, y) }
func (c *recordingContext) LineTo(x, y float64)          { c.add("LineTo", x, y) }
func (c *recordingContext) Clip()                        { c.add("Clip") }
func (c *recordingContext) Stroke()                      { c.add("Stroke") }
func (c *recordingContext) Translate(x, y float64)       { c.add("Translate", x, y) }
func (c *recordingContext) SetFillColor(color.Color)     { c.add("SetFillColor") }
func (c *recordingContext) SetStrokeColor(color.Color)   { c.add("SetStrokeColor") }
func (c *recordingContext) SetLineWidth(w float64)       { c.add("SetLineWidth", w) }
func (c *recordingContext) SetFont(_ string, s float64)  { c.add("SetFont", s) }
func (c *recordingContext) ClearRect(x, y, w, h float64) { c.add("ClearRect", x, y, w, h) }
func (c *recordingContext) FillRect(x, y, w, h float64)  { c.add("FillRect", x, y, w, h) }
func (c *recordingContext) StrokeRect(x, y, w, h float64) {
	c.add("StrokeRect", x, y, w, h)
}
func (c *recordingContext) FillText(_ string, x, y float64) { c.add("FillText", x, y) }
func (c *recordingContext) MeasureText(s string) surface.TextMetrics {
	c.add("MeasureText")
	return surface.TextMetrics{Width: float64(len(s)) * 10, Ascent: 8, Descent: 2}
}
func (c *recordingContext) DrawImage(_ image.Image, x, y, w, h float64) {
	c.add("DrawImage", x, y, w, h)
}

// recordingDocument resolves a single id to an element with a recording
// context.
type recordingDocument struct {
	id  string
	ctx *recordingContext
}

type recordingElement struct {
	id  string
	ctx *recordingContext
}

func (d *recordingDocument) CreateElement(id, _, _ string) (surface.Element, error) {
	d.id = id
	return &recordingElement{id: id, ctx: d.ctx}, nil
}

func (d *recordingDocument) Lookup(id string) (surface.Element, bool) {
	if id != d.id {
		return nil, false
	}
	return &recordingElement{id: id, ctx: d.ctx}, true
}

func (e *recordingElement) ID() string                    { return e.id }
func (e *recordingElement) Class() string                 { return Class }
func (e *recordingElement) Style() string                 { return "" }
func (e *recordingElement) ClientSize() (float64, float64) { return 100, 100 }
func (e *recordingElement) PixelSize() (int, int)         { return 100, 100 }
func (e *recordingElement) SetPixelSize(int, int)         {}
func (e *recordingElement) Context2D() (surface.Context2D, bool) {
	return e.ctx, true
}
