// Package geom provides the value types used to describe canvas geometry in
// two coordinate spaces.
//
// Logical (Scaled) units are device independent and are what drawing callers
// work in. Device pixels (Pixels) are the unit of the physical output surface.
// A [Scale] converts between the two:
//
//	s := geom.Uniform(2)
//	px := s.RectToPixels(geom.Rect[geom.Scaled]{Size: geom.Sz[geom.Scaled](10, 10)})
//	// px.Size == 20x20
//
// The unit is a phantom type parameter, so a logical rectangle can never be
// passed where a pixel rectangle is expected without an explicit conversion.
package geom

// Scaled tags values measured in logical, device independent units.
type Scaled struct{}

// Pixels tags values measured in device pixels.
type Pixels struct{}

// Unit is the set of coordinate spaces.
type Unit interface {
	Scaled | Pixels
}

// Aliases for the common instantiations.
type (
	LogicalPoint = Point[Scaled]
	LogicalSize  = Size[Scaled]
	LogicalRect  = Rect[Scaled]
	PixelPoint   = Point[Pixels]
	PixelSize    = Size[Pixels]
	PixelRect    = Rect[Pixels]
)
