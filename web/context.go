// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package web

import (
	"image"
	"image/color"
	"syscall/js"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/canvas/surface"
)

// context2D forwards to a CanvasRenderingContext2D.
type context2D struct {
	ctx js.Value
}

func (c *context2D) Save()                   { c.ctx.Call("save") }
func (c *context2D) Restore()                { c.ctx.Call("restore") }
func (c *context2D) BeginPath()              { c.ctx.Call("beginPath") }
func (c *context2D) Rect(x, y, w, h float64) { c.ctx.Call("rect", x, y, w, h) }
func (c *context2D) MoveTo(x, y float64)     { c.ctx.Call("moveTo", x, y) }
func (c *context2D) LineTo(x, y float64)     { c.ctx.Call("lineTo", x, y) }
func (c *context2D) Clip()                   { c.ctx.Call("clip") }
func (c *context2D) Stroke()                 { c.ctx.Call("stroke") }
func (c *context2D) Translate(x, y float64)  { c.ctx.Call("translate", x, y) }

func (c *context2D) SetFillColor(col color.Color)   { c.ctx.Set("fillStyle", CSSColor(col)) }
func (c *context2D) SetStrokeColor(col color.Color) { c.ctx.Set("strokeStyle", CSSColor(col)) }

func (c *context2D) SetLineWidth(w float64) {
	if w > 0 {
		c.ctx.Set("lineWidth", w)
	}
}

func (c *context2D) SetFont(family string, size float64) {
	if size > 0 {
		c.ctx.Set("font", CSSFont(family, size))
	}
}

func (c *context2D) ClearRect(x, y, w, h float64)  { c.ctx.Call("clearRect", x, y, w, h) }
func (c *context2D) FillRect(x, y, w, h float64)   { c.ctx.Call("fillRect", x, y, w, h) }
func (c *context2D) StrokeRect(x, y, w, h float64) { c.ctx.Call("strokeRect", x, y, w, h) }
func (c *context2D) FillText(s string, x, y float64) {
	c.ctx.Call("fillText", s, x, y)
}

// MeasureText uses the actual bounding box of the run for ascent and
// descent. Browsers report no line gap.
func (c *context2D) MeasureText(s string) surface.TextMetrics {
	m := c.ctx.Call("measureText", s)
	return surface.TextMetrics{
		Width:   m.Get("width").Float(),
		Ascent:  floatOr(m.Get("actualBoundingBoxAscent"), 0),
		Descent: floatOr(m.Get("actualBoundingBoxDescent"), 0),
	}
}

// DrawImage copies img into an offscreen canvas and draws that scaled
// into (x, y, w, h).
func (c *context2D) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	src := offscreen(img)
	c.ctx.Call("drawImage", src, x, y, w, h)
}

// offscreen returns a detached <canvas> holding the pixels of img.
func offscreen(img image.Image) js.Value {
	b := img.Bounds()
	n, ok := img.(*image.NRGBA)
	if !ok || n.Rect.Min != (image.Point{}) || n.Stride != 4*b.Dx() {
		n = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(n, n.Bounds(), img, b.Min, xdraw.Src)
	}

	el := js.Global().Get("document").Call("createElement", "canvas")
	el.Set("width", b.Dx())
	el.Set("height", b.Dy())
	ctx := el.Call("getContext", "2d")
	data := ctx.Call("createImageData", b.Dx(), b.Dy())
	js.CopyBytesToJS(data.Get("data"), n.Pix)
	ctx.Call("putImageData", data, 0, 0)
	return el
}

func floatOr(v js.Value, def float64) float64 {
	if v.Type() != js.TypeNumber {
		return def
	}
	return v.Float()
}
