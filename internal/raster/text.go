package raster

import "github.com/gogpu/canvas/fonts"

// Point is a device pixel location.
type Point struct {
	X, Y float64
}

// Font selects a registered family at a pixel size.
type Font struct {
	Family string
	Size   float64
}

// Metrics describes a run of text in pixels.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
	LineGap float64
}

// Measure returns the metrics of s set in f. Unknown fonts measure as zero.
func Measure(reg *fonts.Registry, s string, f Font) Metrics {
	if reg == nil {
		reg = fonts.Default()
	}
	face, ok := reg.Face(f.Family, f.Size)
	if !ok {
		return Metrics{}
	}
	m := face.Metrics()
	return Metrics{
		Width:   face.Advance(s),
		Ascent:  m.Ascent,
		Descent: m.Descent,
		LineGap: m.LineGap,
	}
}
