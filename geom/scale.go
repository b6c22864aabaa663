package geom

// Scale converts logical units to device pixels: one logical unit is X
// pixels wide and Y pixels tall. Both factors are expected to be
// non-negative; hosts typically report 1.0 to 3.0.
type Scale struct {
	X, Y float64
}

// Uniform returns a Scale with the same factor on both axes.
func Uniform(f float64) Scale {
	return Scale{X: f, Y: f}
}

// IsUniform reports whether both factors are equal.
func (s Scale) IsUniform() bool {
	return s.X == s.Y
}

// PointToPixels converts a logical point to device pixels.
func (s Scale) PointToPixels(p LogicalPoint) PixelPoint {
	return PixelPoint{X: p.X * s.X, Y: p.Y * s.Y}
}

// PointToScaled converts a pixel point to logical units.
func (s Scale) PointToScaled(p PixelPoint) LogicalPoint {
	return LogicalPoint{X: div(p.X, s.X), Y: div(p.Y, s.Y)}
}

// SizeToPixels converts a logical size to device pixels.
func (s Scale) SizeToPixels(sz LogicalSize) PixelSize {
	return PixelSize{Width: sz.Width * s.X, Height: sz.Height * s.Y}
}

// SizeToScaled converts a pixel size to logical units.
func (s Scale) SizeToScaled(sz PixelSize) LogicalSize {
	return LogicalSize{Width: div(sz.Width, s.X), Height: div(sz.Height, s.Y)}
}

// RectToPixels converts a logical rectangle to device pixels.
func (s Scale) RectToPixels(r LogicalRect) PixelRect {
	return PixelRect{Origin: s.PointToPixels(r.Origin), Size: s.SizeToPixels(r.Size)}
}

// RectToScaled converts a pixel rectangle to logical units.
func (s Scale) RectToScaled(r PixelRect) LogicalRect {
	return LogicalRect{Origin: s.PointToScaled(r.Origin), Size: s.SizeToScaled(r.Size)}
}

// LengthToPixels converts a length without a direction, such as a line
// width or a font size. It uses the mean of both factors.
func (s Scale) LengthToPixels(l float64) float64 {
	return l * (s.X + s.Y) / 2
}

// LengthToScaled is the inverse of LengthToPixels.
func (s Scale) LengthToScaled(l float64) float64 {
	return div(l, (s.X+s.Y)/2)
}

func div(v, f float64) float64 {
	if f == 0 {
		return 0
	}
	return v / f
}
