// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/canvas/geom"
)

// Class is the CSS class given to every canvas element.
const Class = "gooey-canvas"

// Renderable is the drawing logic bound to a Canvas. Render is called at
// most once per committed frame with a fresh Renderer.
type Renderable interface {
	Render(r Renderer, area ContentArea)
}

// PointerHandler is implemented by Renderables that react to pointer
// buttons. Locations are logical and in the same space as the content
// area.
type PointerHandler interface {
	// MouseDown reports whether the press was consumed.
	MouseDown(location geom.LogicalPoint, area ContentArea) bool
	// MouseUp receives nil when the release happened outside the canvas.
	MouseUp(location *geom.LogicalPoint, area ContentArea)
}

// RenderFunc adapts a function to the Renderable interface.
type RenderFunc func(r Renderer, area ContentArea)

// Render calls f(r, area).
func (f RenderFunc) Render(r Renderer, area ContentArea) {
	f(r, area)
}

// ContentArea is the size and placement granted to the canvas for the
// current frame.
type ContentArea struct {
	Location geom.LogicalPoint
	Size     geom.LogicalSize
}

// Bounds returns the area as a rectangle.
func (a ContentArea) Bounds() geom.LogicalRect {
	return geom.LogicalRect{Origin: a.Location, Size: a.Size}
}

// Command is a message delivered to an attached canvas.
type Command uint8

const (
	// CommandRefresh requests a redraw.
	CommandRefresh Command = iota
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandRefresh:
		return "Refresh"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// WidgetID identifies one attachment of a canvas to a backend. IDs are
// unique within the process.
type WidgetID uint64

var lastWidgetID atomic.Uint64

// NewWidgetID returns a fresh id.
func NewWidgetID() WidgetID {
	return WidgetID(lastWidgetID.Add(1))
}

// CSSID returns the element id used for the widget in a document.
func (id WidgetID) CSSID() string {
	return fmt.Sprintf("gooey-%d", uint64(id))
}

// Canvas is the widget holding a Renderable. A Canvas is attached to at
// most one backend at a time.
type Canvas struct {
	renderable Renderable

	mu     sync.Mutex
	widget *Widget
}

// New returns a canvas drawing with r.
func New(r Renderable) *Canvas {
	return &Canvas{renderable: r}
}

// NewFunc returns a canvas drawing with fn.
func NewFunc(fn func(r Renderer, area ContentArea)) *Canvas {
	return New(RenderFunc(fn))
}

// Renderable returns the drawing logic.
func (c *Canvas) Renderable() Renderable {
	return c.renderable
}

// Widget returns the current attachment, or nil.
func (c *Canvas) Widget() *Widget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.widget
}

// Refresh requests a redraw. It does nothing while the canvas is not
// attached.
func (c *Canvas) Refresh() {
	c.Send(CommandRefresh)
}

// Send delivers cmd to the current attachment.
func (c *Canvas) Send(cmd Command) {
	if w := c.Widget(); w != nil {
		w.ReceiveCommand(cmd)
	}
}

func (c *Canvas) render(r Renderer, area ContentArea) {
	if c.renderable != nil {
		c.renderable.Render(r, area)
	}
}

func (c *Canvas) attach(w *Widget) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.widget != nil {
		return fmt.Errorf("%w: widget %d", ErrAlreadyAttached, c.widget.id)
	}
	c.widget = w
	return nil
}

func (c *Canvas) detach(w *Widget) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.widget == w {
		c.widget = nil
	}
}
