package main

import (
	"image"
	"image/color"
	"sort"

	"golang.org/x/image/colornames"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/geom"
)

// examples maps example names to constructors of their canvases.
var examples = map[string]func() *canvas.Canvas{
	"basic":  basic,
	"shapes": shapes,
}

func exampleNames() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// basic fills the canvas with red, inset by 64 units on every side.
func basic() *canvas.Canvas {
	return canvas.NewFunc(func(r canvas.Renderer, _ canvas.ContentArea) {
		r.FillRect(canvas.Bounds(r).Inflate(-64, -64), colornames.Red)
	})
}

// shapes exercises every primitive inside a clipped panel.
func shapes() *canvas.Canvas {
	swatch := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := colornames.Steelblue
			if (x/4+y/4)%2 == 0 {
				c = colornames.Gold
			}
			swatch.SetRGBA(x, y, c)
		}
	}
	img := canvas.ImageFrom(swatch)

	return canvas.NewFunc(func(r canvas.Renderer, _ canvas.ContentArea) {
		fg := r.Theme().Foreground()
		bounds := canvas.Bounds(r)

		r.StrokeRect(bounds.Inflate(-4, -4), canvas.StrokeOptions{Color: fg, LineWidth: 2})

		panel := r.ClipTo(bounds.Inflate(-16, -16))
		pb := panel.ClipBounds()
		panel.FillRect(geom.RectFromSize(pb.Size), colornames.Lightgray)
		panel.StrokeLine(geom.Pt[geom.Scaled](0, 0), geom.Pt[geom.Scaled](pb.Size.Width, pb.Size.Height),
			canvas.StrokeOptions{Color: colornames.Crimson, LineWidth: 3})

		opts := canvas.TextOptions{Color: color.Black, Size: 18}
		m := panel.MeasureText("gogpu canvas", opts)
		panel.RenderText("gogpu canvas", geom.Pt[geom.Scaled](8, 8+m.Ascent), opts)
		panel.DrawImage(img, geom.Pt[geom.Scaled](8, 16+m.Height()))
	})
}
