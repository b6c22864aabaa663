// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package web

import (
	"fmt"
	"syscall/js"

	"github.com/gogpu/canvas/surface"
)

// Body returns document.body.
func Body() js.Value {
	return js.Global().Get("document").Get("body")
}

// Document creates <canvas> elements inside a parent node and finds them
// again by id.
type Document struct {
	doc    js.Value
	parent js.Value
}

// NewDocument returns a Document that appends new elements to parent.
func NewDocument(parent js.Value) *Document {
	return &Document{
		doc:    js.Global().Get("document"),
		parent: parent,
	}
}

// CreateElement creates a <canvas> with the given id, class and inline
// style and appends it to the parent node.
func (d *Document) CreateElement(id, class, style string) (surface.Element, error) {
	if id == "" {
		return nil, surface.ErrEmptyID
	}
	if _, ok := d.Lookup(id); ok {
		return nil, fmt.Errorf("%w: %q", surface.ErrDuplicateID, id)
	}
	el := d.doc.Call("createElement", "canvas")
	el.Set("id", id)
	el.Set("className", class)
	el.Call("setAttribute", "style", style)
	d.parent.Call("appendChild", el)
	return &element{v: el}, nil
}

// Lookup finds an element by id.
func (d *Document) Lookup(id string) (surface.Element, bool) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return &element{v: el}, true
}

// Remove detaches the element with the given id from the DOM.
func (d *Document) Remove(id string) bool {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return false
	}
	el.Call("remove")
	return true
}

// element wraps an HTMLCanvasElement.
type element struct {
	v js.Value
}

func (e *element) ID() string    { return e.v.Get("id").String() }
func (e *element) Class() string { return e.v.Get("className").String() }
func (e *element) Style() string { return e.v.Call("getAttribute", "style").String() }

func (e *element) ClientSize() (w, h float64) {
	return e.v.Get("clientWidth").Float(), e.v.Get("clientHeight").Float()
}

func (e *element) PixelSize() (w, h int) {
	return e.v.Get("width").Int(), e.v.Get("height").Int()
}

// SetPixelSize resizes the backing store. The browser clears the canvas
// and resets its context state.
func (e *element) SetPixelSize(w, h int) {
	e.v.Set("width", w)
	e.v.Set("height", h)
}

func (e *element) Context2D() (surface.Context2D, bool) {
	ctx := e.v.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, false
	}
	return &context2D{ctx: ctx}, true
}
