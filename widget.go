// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/canvas/frame"
	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/internal/logging"
)

// Host is the windowing layer a backend runs in.
type Host interface {
	frame.Scheduler

	// DevicePixelRatio returns the device pixels per logical unit.
	DevicePixelRatio() float64
	// Theme returns the current appearance.
	Theme() Theme
	// OnResize registers fn to run when the viewport changes size and
	// returns a function that removes it.
	OnResize(fn func()) (remove func())
}

// SceneHost is a Host that displays rasterized frames.
type SceneHost interface {
	Host

	// ViewportSize returns the drawable size in device pixels. It reports
	// false when there is no live viewport.
	ViewportSize() (w, h int, ok bool)
	// Present displays a committed frame for the widget.
	Present(id WidgetID, frame image.Image)
}

// Widget is the per-attachment state of a canvas: its id, the pending
// frame flag and the content area of the last frame.
type Widget struct {
	id     WidgetID
	canvas *Canvas
	host   Host
	state  frame.State
	draw   func(w *Widget)
	style  string

	removeResize func()
	detached     atomic.Bool

	mu     sync.Mutex
	area   ContentArea
	frames uint64
}

func newWidget(c *Canvas, host Host, draw func(w *Widget)) *Widget {
	return &Widget{
		id:     NewWidgetID(),
		canvas: c,
		host:   host,
		draw:   draw,
	}
}

// ID returns the widget id.
func (w *Widget) ID() WidgetID {
	return w.id
}

// Canvas returns the attached canvas.
func (w *Widget) Canvas() *Canvas {
	return w.canvas
}

// Style returns the inline style rules given to the widget's element.
func (w *Widget) Style() string {
	return w.style
}

// ReceiveCommand handles a command sent to the canvas.
func (w *Widget) ReceiveCommand(cmd Command) {
	switch cmd {
	case CommandRefresh:
		w.Refresh()
	default:
		logging.L().Debug("canvas: unknown command", "command", cmd)
	}
}

// Refresh requests a frame. Requests made before the frame fires coalesce
// into that frame.
func (w *Widget) Refresh() {
	if w.detached.Load() {
		return
	}
	w.state.Request(w.host, w.fire)
}

// Pending reports whether a frame is scheduled and has not fired yet.
func (w *Widget) Pending() bool {
	return w.state.Pending()
}

// Frames returns how many frames the widget has drawn.
func (w *Widget) Frames() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

// ContentArea returns the area of the most recent frame.
func (w *Widget) ContentArea() ContentArea {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.area
}

// MouseDown forwards a press inside the content area to the Renderable,
// if it handles pointers, and reports whether it was consumed.
func (w *Widget) MouseDown(location geom.LogicalPoint) bool {
	h, ok := w.canvas.renderable.(PointerHandler)
	if !ok {
		return false
	}
	area := w.ContentArea()
	if !area.Bounds().Contains(location) {
		return false
	}
	return h.MouseDown(location, area)
}

// MouseUp forwards a release to the Renderable. A location outside the
// content area is reported as nil.
func (w *Widget) MouseUp(location *geom.LogicalPoint) {
	h, ok := w.canvas.renderable.(PointerHandler)
	if !ok {
		return
	}
	area := w.ContentArea()
	if location != nil && !area.Bounds().Contains(*location) {
		location = nil
	}
	h.MouseUp(location, area)
}

// Detach removes the resize listener and releases the canvas. Frames that
// fire afterwards are dropped.
func (w *Widget) Detach() {
	if w.detached.Swap(true) {
		return
	}
	if w.removeResize != nil {
		w.removeResize()
	}
	w.canvas.detach(w)
}

// Detached reports whether Detach has been called.
func (w *Widget) Detached() bool {
	return w.detached.Load()
}

// start hooks resize notifications to Refresh and requests the first
// frame.
func (w *Widget) start() {
	w.removeResize = w.host.OnResize(w.Refresh)
	w.Refresh()
}

func (w *Widget) fire() {
	if w.detached.Load() {
		logging.L().Debug("canvas: frame for detached widget dropped", "id", w.id)
		return
	}
	w.draw(w)
}

// render records the content area and runs the Renderable.
func (w *Widget) render(r Renderer) {
	area := ContentArea{Size: r.Size()}
	w.mu.Lock()
	w.area = area
	w.frames++
	w.mu.Unlock()
	w.canvas.render(r, area)
}
