package fonts

import (
	"errors"
	"slices"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestDefaultFamilies(t *testing.T) {
	got := Default().Families()
	want := []string{Monospace, SansSerif}
	if !slices.Equal(got, want) {
		t.Errorf("Families() = %v, want %v", got, want)
	}
}

func TestFaceCaching(t *testing.T) {
	r := Default()
	a, ok := r.Face(SansSerif, 14)
	if !ok {
		t.Fatal("SansSerif face unavailable")
	}
	b, _ := r.Face(SansSerif, 14)
	if a != b {
		t.Error("faces of the same family and size should be cached")
	}
	if a.Size() != 14 {
		t.Errorf("Size() = %v, want 14", a.Size())
	}
	if a.Advance("hello") <= 0 {
		t.Error("Advance should be positive for non-empty text")
	}
}

func TestFaceFallback(t *testing.T) {
	r := Default()
	want, _ := r.Face(SansSerif, 20)
	got, ok := r.Face("fantasy", 20)
	if !ok {
		t.Fatal("unknown family should fall back")
	}
	if got.Source() != want.Source() {
		t.Error("unknown family should resolve to the sans-serif source")
	}
	if _, ok := r.Face("", 20); !ok {
		t.Error("empty family should resolve to the fallback")
	}
}

func TestFaceInvalid(t *testing.T) {
	if _, ok := Default().Face(SansSerif, 0); ok {
		t.Error("zero size should not produce a face")
	}
	if _, ok := NewRegistry().Face(SansSerif, 12); ok {
		t.Error("empty registry should not produce a face")
	}
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("", goregular.TTF); !errors.Is(err, ErrEmptyFamily) {
		t.Errorf("Register(\"\") error = %v, want ErrEmptyFamily", err)
	}
	if err := r.Register("bad", []byte("not a font")); err == nil {
		t.Error("Register with garbage data should fail")
	}
	if err := r.Register("body", goregular.TTF); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, ok := r.Face("body", 10); !ok {
		t.Error("registered family should resolve")
	}
}

func TestFaceCacheBounded(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(SansSerif, goregular.TTF); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= MaxFaces+10; i++ {
		if _, ok := r.Face(SansSerif, float64(i)); !ok {
			t.Fatalf("Face(%d) unavailable", i)
		}
	}
	if n := r.faces.Len(); n != MaxFaces {
		t.Errorf("cached faces = %d, want %d", n, MaxFaces)
	}

	// Re-registering a family drops its cached faces.
	if err := r.Register(SansSerif, goregular.TTF); err != nil {
		t.Fatal(err)
	}
	if n := r.faces.Len(); n != 0 {
		t.Errorf("cached faces after Register = %d, want 0", n)
	}
}
