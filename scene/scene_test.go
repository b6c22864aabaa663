package scene

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/internal/raster"
)

func pixRect(x, y, w, h float64) geom.PixelRect {
	return geom.PixelRect{Origin: geom.Pt[geom.Pixels](x, y), Size: geom.Sz[geom.Pixels](w, h)}
}

func opaque(img *image.RGBA, x, y int) bool {
	return img.RGBAAt(x, y).A == 255
}

func TestNewClampsNegativeSize(t *testing.T) {
	s := New(-10, 20, geom.Uniform(1), nil)
	if got := s.Size(); got.Width != 0 || got.Height != 20 {
		t.Errorf("Size() = %v, want 0x20", got)
	}
	if !s.Root().Clip().IsEmpty() {
		t.Error("root clip of a zero-width scene should be empty")
	}
}

func TestRootFill(t *testing.T) {
	s := New(320, 240, geom.Uniform(1), nil)
	s.Root().FillRect(pixRect(64, 64, 192, 112), colornames.Red)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	img := s.Image()
	if got := img.RGBAAt(160, 120); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("centre = %v, want red", got)
	}
	if got := img.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
}

func TestClipToIsRelative(t *testing.T) {
	s := New(100, 100, geom.Uniform(1), nil)
	sub := s.Root().ClipTo(pixRect(50, 50, 20, 20))
	sub.FillRect(pixRect(0, 0, 5, 5), colornames.Blue)
	img := s.Image()

	if !opaque(img, 52, 52) {
		t.Error("fill should land at the clip origin")
	}
	if opaque(img, 2, 2) {
		t.Error("fill must not land at the scene origin")
	}
}

func TestClipToIntersects(t *testing.T) {
	root := New(100, 100, geom.Uniform(1), nil).Root()
	a := root.ClipTo(pixRect(10, 10, 50, 50))
	b := a.ClipTo(pixRect(40, 40, 100, 100))

	if want := pixRect(40, 40, 20, 20); b.Clip() != want {
		t.Errorf("nested clip = %v, want %v", b.Clip(), want)
	}
	if a.Clip() != pixRect(10, 10, 50, 50) {
		t.Error("ClipTo must not modify the receiver")
	}
	if !root.ClipTo(pixRect(200, 200, 10, 10)).Clip().IsEmpty() {
		t.Error("disjoint clip should be empty")
	}
}

func TestEmptyClipRecordsNothing(t *testing.T) {
	s := New(100, 100, geom.Uniform(1), nil)
	empty := s.Root().ClipTo(pixRect(0, 0, 0, 50))
	empty.FillRect(pixRect(0, 0, 10, 10), colornames.Red)
	empty.StrokeRect(pixRect(0, 0, 10, 10), colornames.Red, 1)
	empty.StrokeLine(geom.Pt[geom.Pixels](0, 0), geom.Pt[geom.Pixels](10, 10), colornames.Red, 1)
	empty.FillText("x", geom.Pt[geom.Pixels](0, 10), raster.Font{Size: 12}, colornames.Red)
	empty.DrawImage(image.NewRGBA(image.Rect(0, 0, 2, 2)), pixRect(0, 0, 2, 2))

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestFillOutsideClipIsCut(t *testing.T) {
	s := New(100, 100, geom.Uniform(1), nil)
	sub := s.Root().ClipTo(pixRect(20, 20, 30, 30))
	sub.FillRect(pixRect(-100, -100, 400, 400), colornames.Red)
	img := s.Image()

	n := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	if n != 900 {
		t.Errorf("painted pixels = %d, want 900", n)
	}
}

func TestCommandsPlayInOrder(t *testing.T) {
	s := New(10, 10, geom.Uniform(1), nil)
	root := s.Root()
	root.FillRect(pixRect(0, 0, 10, 10), colornames.Red)
	root.FillRect(pixRect(0, 0, 10, 10), colornames.Lime)

	if got := s.Image().RGBAAt(5, 5); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("pixel = %v, want lime on top", got)
	}
}

func TestResetDropsCommands(t *testing.T) {
	s := New(10, 10, geom.Uniform(1), nil)
	s.Root().FillRect(pixRect(0, 0, 10, 10), colornames.Red)
	s.Reset(20, 5, geom.Uniform(2))

	if s.Len() != 0 {
		t.Errorf("Len() = %d after Reset", s.Len())
	}
	if got := s.Size(); got.Width != 20 || got.Height != 5 {
		t.Errorf("Size() = %v, want 20x5", got)
	}
	if s.Scale() != geom.Uniform(2) {
		t.Errorf("Scale() = %v", s.Scale())
	}
}

func TestDrawImageTranslated(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	s := New(50, 50, geom.Uniform(1), nil)
	s.Root().ClipTo(pixRect(10, 10, 20, 20)).DrawImage(src, pixRect(2, 2, 4, 4))
	img := s.Image()

	if !opaque(img, 13, 13) {
		t.Error("image should be drawn relative to the clip origin")
	}
	if opaque(img, 3, 3) {
		t.Error("image drawn at the scene origin")
	}
}

func TestMeasureText(t *testing.T) {
	s := New(10, 10, geom.Uniform(1), nil)
	m := s.Root().MeasureText("hello", raster.Font{Size: 16})
	if m.Width <= 0 || m.Ascent <= 0 {
		t.Errorf("metrics = %+v", m)
	}
	if got := (Target{}).MeasureText("hello", raster.Font{Size: 16}); got != (raster.Metrics{}) {
		t.Errorf("zero target metrics = %+v", got)
	}
}
