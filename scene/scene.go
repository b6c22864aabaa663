// Package scene is the retained drawing target of the rasterizer backend.
//
// A Scene collects one frame of primitives, each stamped with the device
// pixel clip that was active when it was issued, and plays them back into an
// RGBA image when the frame is committed. Drawing goes through a [Target]:
// a scene handle plus a clip rectangle. Narrowing a Target produces a new
// Target; the Scene itself keeps no clip stack that could be left unbalanced.
//
// A Scene is not safe for concurrent use. The canvas backends build and
// commit a scene on the host's frame callback.
package scene

import (
	"image"
	"image/color"

	"github.com/gogpu/canvas/fonts"
	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/internal/raster"
)

// Scene accumulates one frame of drawing commands.
type Scene struct {
	width, height int
	scale         geom.Scale
	fonts         *fonts.Registry
	cmds          []command
}

// New returns an empty scene of width x height device pixels. A nil
// registry uses fonts.Default.
func New(width, height int, scale geom.Scale, reg *fonts.Registry) *Scene {
	if reg == nil {
		reg = fonts.Default()
	}
	s := &Scene{fonts: reg}
	s.Reset(width, height, scale)
	return s
}

// Reset discards recorded commands and sets new dimensions and scale.
// Negative dimensions are treated as zero.
func (s *Scene) Reset(width, height int, scale geom.Scale) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.scale = scale
	clear(s.cmds)
	s.cmds = s.cmds[:0]
}

// Size returns the scene dimensions in device pixels.
func (s *Scene) Size() geom.PixelSize {
	return geom.Sz[geom.Pixels](float64(s.width), float64(s.height))
}

// Scale returns the logical to pixel scale of this frame.
func (s *Scene) Scale() geom.Scale {
	return s.scale
}

// Fonts returns the registry used to measure and draw text.
func (s *Scene) Fonts() *fonts.Registry {
	return s.fonts
}

// Len returns the number of recorded commands.
func (s *Scene) Len() int {
	return len(s.cmds)
}

// Root returns a Target covering the whole scene.
func (s *Scene) Root() Target {
	return Target{scene: s, clip: geom.RectFromSize(s.Size())}
}

// Rasterize plays the recorded commands into dst in order.
func (s *Scene) Rasterize(dst *image.RGBA) {
	p := raster.NewPainter(dst, s.fonts)
	for _, c := range s.cmds {
		c.play(p)
	}
}

// Image returns a new transparent image of the scene size with every
// command rasterized into it.
func (s *Scene) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	s.Rasterize(img)
	return img
}

func (s *Scene) record(c command) {
	s.cmds = append(s.cmds, c)
}

type command interface {
	play(p *raster.Painter)
}

type fillRect struct {
	clip  image.Rectangle
	rect  geom.PixelRect
	color color.Color
}

func (c fillRect) play(p *raster.Painter) {
	p.FillRect(c.clip, c.rect.Origin.X, c.rect.Origin.Y, c.rect.Size.Width, c.rect.Size.Height, c.color)
}

type strokeRect struct {
	clip  image.Rectangle
	rect  geom.PixelRect
	color color.Color
	width float64
}

func (c strokeRect) play(p *raster.Painter) {
	p.StrokeRect(c.clip, c.rect.Origin.X, c.rect.Origin.Y, c.rect.Size.Width, c.rect.Size.Height, c.color, c.width)
}

type strokeLine struct {
	clip  image.Rectangle
	a, b  geom.PixelPoint
	color color.Color
	width float64
}

func (c strokeLine) play(p *raster.Painter) {
	p.StrokeLine(c.clip, c.a.X, c.a.Y, c.b.X, c.b.Y, c.color, c.width)
}

type fillText struct {
	clip     image.Rectangle
	text     string
	baseline geom.PixelPoint
	font     raster.Font
	color    color.Color
}

func (c fillText) play(p *raster.Painter) {
	p.FillText(c.clip, c.text, c.baseline.X, c.baseline.Y, c.font, c.color)
}

type drawImage struct {
	clip image.Rectangle
	img  image.Image
	rect geom.PixelRect
}

func (c drawImage) play(p *raster.Painter) {
	p.DrawImage(c.clip, c.img, c.rect.Origin.X, c.rect.Origin.Y, c.rect.Size.Width, c.rect.Size.Height)
}
