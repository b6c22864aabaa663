// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image/color"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/canvas/fonts"
	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/internal/raster"
)

// Defaults applied to zero-valued options.
const (
	DefaultLineWidth = 1.0
	DefaultTextSize  = 14.0
)

// Renderer draws in logical units into the clip rectangle of one frame.
//
// The implementations are *SceneRenderer and *SurfaceRenderer; the set is
// closed. A Renderer is created fresh for every frame and must not be kept
// after the render callback returns.
type Renderer interface {
	// Size returns the size of the clip rectangle.
	Size() geom.LogicalSize
	// Scale returns the logical to device pixel factor of this frame.
	Scale() geom.Scale
	// Theme returns the host theme active for this frame.
	Theme() Theme
	// ClipBounds returns the clip rectangle in root-surface coordinates.
	ClipBounds() geom.LogicalRect
	// ClipTo returns a Renderer clipped to the intersection of the current
	// clip and bounds, given in root-surface coordinates.
	ClipTo(bounds geom.LogicalRect) Renderer

	FillRect(rect geom.LogicalRect, c color.Color)
	StrokeRect(rect geom.LogicalRect, opts StrokeOptions)
	StrokeLine(a, b geom.LogicalPoint, opts StrokeOptions)
	// RenderText draws a single line of text with its baseline starting at
	// baseline. Text is not wrapped.
	RenderText(text string, baseline geom.LogicalPoint, opts TextOptions)
	// MeasureText returns zero metrics when no surface is available.
	MeasureText(text string, opts TextOptions) TextMetrics
	// DrawImage draws img at its natural size with its top-left corner at
	// location. Unloaded images are skipped.
	DrawImage(img *Image, location geom.LogicalPoint)

	renderer()
}

// Bounds returns the clip rectangle of r relative to its own origin, the
// rectangle a render callback usually fills.
func Bounds(r Renderer) geom.LogicalRect {
	return geom.RectFromSize(r.Size())
}

// StrokeOptions configures outlines and lines.
type StrokeOptions struct {
	// Color defaults to black.
	Color color.Color
	// LineWidth is in logical units; zero means DefaultLineWidth.
	LineWidth float64
}

func (o StrokeOptions) lineWidth() float64 {
	if o.LineWidth <= 0 {
		return DefaultLineWidth
	}
	return o.LineWidth
}

// TextOptions configures text drawing and measurement.
type TextOptions struct {
	// Color defaults to black.
	Color color.Color
	// Family is a registered font family; empty means fonts.SansSerif.
	Family string
	// Size is the font size in logical units; zero means DefaultTextSize.
	Size float64
}

func (o TextOptions) family() string {
	if o.Family == "" {
		return fonts.SansSerif
	}
	return o.Family
}

func (o TextOptions) size() float64 {
	if o.Size <= 0 {
		return DefaultTextSize
	}
	return o.Size
}

// font returns the device pixel font for these options.
func (o TextOptions) font(s geom.Scale) raster.Font {
	return raster.Font{Family: o.family(), Size: s.LengthToPixels(o.size())}
}

// TextMetrics describes a line of text in logical units.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
	LineGap float64
}

// Height returns the ascent plus the descent.
func (m TextMetrics) Height() float64 {
	return m.Ascent + m.Descent
}

// LineHeight returns the distance between consecutive baselines.
func (m TextMetrics) LineHeight() float64 {
	return m.Height() + m.LineGap
}

func metricsToScaled(s geom.Scale, width, ascent, descent, lineGap float64) TextMetrics {
	return TextMetrics{
		Width:   s.LengthToScaled(width),
		Ascent:  s.LengthToScaled(ascent),
		Descent: s.LengthToScaled(descent),
		LineGap: s.LengthToScaled(lineGap),
	}
}

func resolveColor(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}

// normalizeText puts text in NFC so both backends see the same code points.
func normalizeText(s string) string {
	return norm.NFC.String(s)
}
