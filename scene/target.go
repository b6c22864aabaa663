package scene

import (
	"image"
	"image/color"

	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/internal/raster"
)

// Target draws into a Scene through a device pixel clip rectangle.
// Coordinates passed to drawing methods are relative to the clip origin.
// Targets are small values; copy them freely.
type Target struct {
	scene *Scene
	clip  geom.PixelRect
}

// Scene returns the scene the target records into.
func (t Target) Scene() *Scene {
	return t.scene
}

// Clip returns the clip rectangle in absolute scene pixels.
func (t Target) Clip() geom.PixelRect {
	return t.clip
}

// ClipTo returns a target whose clip is the intersection of the current
// clip and r, both in absolute scene pixels.
func (t Target) ClipTo(r geom.PixelRect) Target {
	return Target{scene: t.scene, clip: t.clip.Intersect(r)}
}

// FillRect fills r.
func (t Target) FillRect(r geom.PixelRect, c color.Color) {
	clip, ok := t.drawable()
	if !ok {
		return
	}
	t.scene.record(fillRect{clip: clip, rect: r.Translate(t.clip.Origin), color: c})
}

// StrokeRect outlines r with a line width pixels wide.
func (t Target) StrokeRect(r geom.PixelRect, c color.Color, width float64) {
	clip, ok := t.drawable()
	if !ok {
		return
	}
	t.scene.record(strokeRect{clip: clip, rect: r.Translate(t.clip.Origin), color: c, width: width})
}

// StrokeLine draws a segment from a to b.
func (t Target) StrokeLine(a, b geom.PixelPoint, c color.Color, width float64) {
	clip, ok := t.drawable()
	if !ok {
		return
	}
	o := t.clip.Origin
	t.scene.record(strokeLine{clip: clip, a: a.Add(o), b: b.Add(o), color: c, width: width})
}

// FillText draws s with its baseline starting at baseline.
func (t Target) FillText(s string, baseline geom.PixelPoint, f raster.Font, c color.Color) {
	clip, ok := t.drawable()
	if !ok || s == "" {
		return
	}
	t.scene.record(fillText{clip: clip, text: s, baseline: baseline.Add(t.clip.Origin), font: f, color: c})
}

// MeasureText returns pixel metrics of s set in f.
func (t Target) MeasureText(s string, f raster.Font) raster.Metrics {
	if t.scene == nil {
		return raster.Metrics{}
	}
	return raster.Measure(t.scene.fonts, s, f)
}

// DrawImage draws img scaled into r.
func (t Target) DrawImage(img image.Image, r geom.PixelRect) {
	clip, ok := t.drawable()
	if !ok || img == nil {
		return
	}
	t.scene.record(drawImage{clip: clip, img: img, rect: r.Translate(t.clip.Origin)})
}

func (t Target) drawable() (image.Rectangle, bool) {
	if t.scene == nil {
		return image.Rectangle{}, false
	}
	c := t.clip
	clip := raster.ClipRect(c.Origin.X, c.Origin.Y, c.Size.Width, c.Size.Height)
	return clip, !clip.Empty()
}
