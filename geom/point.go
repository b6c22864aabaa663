package geom

// Point is a location in the coordinate space U.
type Point[U Unit] struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt[U Unit](x, y float64) Point[U] {
	return Point[U]{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point[U]) Add(q Point[U]) Point[U] {
	return Point[U]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point[U]) Sub(q Point[U]) Point[U] {
	return Point[U]{X: p.X - q.X, Y: p.Y - q.Y}
}
