// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"image/color"
)

// Errors returned by documents.
var (
	// ErrDuplicateID is returned when creating an element whose id is taken.
	ErrDuplicateID = errors.New("surface: duplicate element id")

	// ErrEmptyID is returned when creating an element without an id.
	ErrEmptyID = errors.New("surface: empty element id")
)

// TextMetrics are the measurements of a run of text in backing pixels.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
	LineGap float64
}

// Context2D is a stateful 2D drawing context.
//
// Save pushes the clip, transform and style state; Restore pops it.
// Unbalanced Restore calls are ignored.
type Context2D interface {
	Save()
	Restore()

	BeginPath()
	Rect(x, y, w, h float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Clip()
	Stroke()

	Translate(x, y float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	// SetFont selects a family at a pixel size.
	SetFont(family string, size float64)

	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillText(s string, x, y float64)
	MeasureText(s string) TextMetrics
	// DrawImage draws img scaled into the rectangle (x, y, w, h).
	DrawImage(img image.Image, x, y, w, h float64)
}

// Element is a drawable node of a document.
type Element interface {
	ID() string
	Class() string
	Style() string

	// ClientSize reports the laid out size in CSS (logical) pixels.
	ClientSize() (w, h float64)
	// PixelSize reports the backing store dimensions.
	PixelSize() (w, h int)
	// SetPixelSize resizes and clears the backing store.
	SetPixelSize(w, h int)

	// Context2D opens the element's drawing context. It reports false when
	// the element can no longer be drawn, e.g. after removal.
	Context2D() (Context2D, bool)
}

// Document creates and resolves elements by id.
type Document interface {
	CreateElement(id, class, style string) (Element, error)
	Lookup(id string) (Element, bool)
}
