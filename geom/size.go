package geom

// Size is a width and height in the coordinate space U.
type Size[U Unit] struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz[U Unit](width, height float64) Size[U] {
	return Size[U]{Width: width, Height: height}
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size[U]) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Max returns the component-wise maximum of s and o.
func (s Size[U]) Max(o Size[U]) Size[U] {
	return Size[U]{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// ClampNonNegative replaces negative dimensions with zero.
func (s Size[U]) ClampNonNegative() Size[U] {
	return s.Max(Size[U]{})
}

// Area returns Width*Height, or 0 for an empty size.
func (s Size[U]) Area() float64 {
	if s.IsEmpty() {
		return 0
	}
	return s.Width * s.Height
}
