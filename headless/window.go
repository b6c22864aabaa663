// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless provides a window without a display.
//
// A [Window] satisfies canvas.SceneHost and, through [Window.Document],
// supplies the element document a canvas.SurfaceBackend needs. Frames are
// driven by hand with RunFrame, which makes the package the host of choice
// for snapshot generation and tests.
//
//	win, _ := headless.New(320, 240, headless.WithDevicePixelRatio(2))
//	backend := canvas.NewSceneBackend(win)
//	w, _ := backend.Transmogrify(canvas.NewFunc(draw))
//	win.RunUntilIdle(8)
//	img, _ := win.Screenshot(w.ID())
package headless

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/frame"
	"github.com/gogpu/canvas/internal/logging"
	"github.com/gogpu/canvas/surface"
	xdraw "golang.org/x/image/draw"
)

var (
	// ErrInvalidDimensions is returned when a window size is not positive.
	ErrInvalidDimensions = errors.New("headless: invalid dimensions")

	// ErrClosed is returned by operations on a closed window.
	ErrClosed = errors.New("headless: window is closed")

	// ErrNoFrame is returned by Screenshot when a widget has nothing to show.
	ErrNoFrame = errors.New("headless: no frame for widget")
)

// Window is an in-memory window. Its size is in logical units; the viewport
// is that size times the device pixel ratio, rounded.
type Window struct {
	*frame.Loop

	mu        sync.Mutex
	width     float64
	height    float64
	dpr       float64
	theme     canvas.Theme
	listeners map[int]func()
	nextID    int
	frames    map[canvas.WidgetID]image.Image
	onPresent func(canvas.WidgetID, image.Image)
	doc       *surface.Registry
	closed    bool
}

// New returns a window of the given logical size.
func New(width, height float64, opts ...Option) (*Window, error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("%w: width=%v, height=%v", ErrInvalidDimensions, width, height)
	}
	o := applyOptions(opts)
	w := &Window{
		Loop:      frame.NewLoop(),
		width:     width,
		height:    height,
		dpr:       o.dpr,
		theme:     o.theme,
		listeners: make(map[int]func()),
		frames:    make(map[canvas.WidgetID]image.Image),
		onPresent: o.onPresent,
	}
	w.doc = surface.NewRegistry(w.newElement)
	return w, nil
}

func validSize(w, h float64) bool {
	return w > 0 && h > 0 && !math.IsInf(w, 0) && !math.IsInf(h, 0)
}

// newElement creates bitmaps laid out to fill the window.
func (w *Window) newElement(id, class, style string) (surface.Element, error) {
	w.mu.Lock()
	cw, ch, closed := w.width, w.height, w.closed
	w.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}
	b := surface.NewBitmap(id, class, style)
	b.SetClientSize(cw, ch)
	return b, nil
}

// Document returns the element document of the window.
func (w *Window) Document() *surface.Registry {
	return w.doc
}

// Size returns the logical size of the window.
func (w *Window) Size() (width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// DevicePixelRatio returns the device pixels per logical unit.
func (w *Window) DevicePixelRatio() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dpr
}

// Theme returns the window theme.
func (w *Window) Theme() canvas.Theme {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.theme
}

// ViewportSize returns the viewport in device pixels. It reports false once
// the window is closed.
func (w *Window) ViewportSize() (int, int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0, 0, false
	}
	return int(math.Round(w.width * w.dpr)), int(math.Round(w.height * w.dpr)), true
}

// OnResize registers fn to run after every size, density or theme change.
func (w *Window) OnResize(fn func()) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners, id)
	}
}

// Listeners returns the number of registered resize listeners.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

// Present stores frame as the latest frame of widget id and forwards it to
// the present hook, if any.
func (w *Window) Present(id canvas.WidgetID, frame image.Image) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.frames[id] = frame
	hook := w.onPresent
	w.mu.Unlock()

	if hook != nil {
		hook(id, frame)
	}
}

// Resize changes the logical size and notifies resize listeners.
func (w *Window) Resize(width, height float64) error {
	if !validSize(width, height) {
		return fmt.Errorf("%w: width=%v, height=%v", ErrInvalidDimensions, width, height)
	}
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	w.width, w.height = width, height
	w.mu.Unlock()

	w.doc.Each(func(el surface.Element) {
		if b, ok := el.(*surface.Bitmap); ok {
			b.SetClientSize(width, height)
		}
	})
	logging.L().Debug("headless: resize", "width", width, "height", height)
	w.notify()
	return nil
}

// SetDevicePixelRatio changes the density and notifies resize listeners,
// as a browser does when the page is zoomed.
func (w *Window) SetDevicePixelRatio(dpr float64) {
	if dpr <= 0 || math.IsNaN(dpr) || math.IsInf(dpr, 0) {
		dpr = 1
	}
	w.mu.Lock()
	changed := w.dpr != dpr
	w.dpr = dpr
	w.mu.Unlock()
	if changed {
		w.notify()
	}
}

// SetTheme changes the theme. Listeners are notified so widgets redraw
// with the new colors.
func (w *Window) SetTheme(t canvas.Theme) {
	w.mu.Lock()
	changed := w.theme != t
	w.theme = t
	w.mu.Unlock()
	if changed {
		w.notify()
	}
}

func (w *Window) notify() {
	w.mu.Lock()
	fns := make([]func(), 0, len(w.listeners))
	for _, fn := range w.listeners {
		fns = append(fns, fn)
	}
	w.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Frame returns the latest frame presented for widget id.
func (w *Window) Frame(id canvas.WidgetID) (image.Image, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	img, ok := w.frames[id]
	return img, ok
}

// Screenshot returns what widget id looks like on screen: its latest
// presented frame, or for surface widgets its element's backing bitmap,
// composited over the theme background.
func (w *Window) Screenshot(id canvas.WidgetID) (*image.RGBA, error) {
	w.mu.Lock()
	closed := w.closed
	src, ok := w.frames[id]
	bg := w.theme.Background()
	w.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}
	if !ok {
		if el, found := w.doc.Lookup(id.CSSID()); found {
			if b, isBitmap := el.(*surface.Bitmap); isBitmap {
				if img := b.Image(); img != nil {
					src, ok = img, true
				}
			}
		}
	}
	if !ok || src == nil || src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %d", ErrNoFrame, id)
	}

	r := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	xdraw.Draw(out, out.Bounds(), src, r.Min, xdraw.Over)
	return out, nil
}

// Close releases every element and stops presenting. Pending frames still
// run but see no viewport. Close is idempotent.
func (w *Window) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.frames = make(map[canvas.WidgetID]image.Image)
	w.mu.Unlock()

	for _, id := range w.doc.IDs() {
		w.doc.Remove(id)
	}
	return nil
}
