package geom

// Rect is an axis-aligned rectangle in the coordinate space U.
// A rectangle with a zero or negative dimension is empty and contains no
// points.
type Rect[U Unit] struct {
	Origin Point[U]
	Size   Size[U]
}

// RectFromSize returns a rectangle at the origin with the given size.
func RectFromSize[U Unit](s Size[U]) Rect[U] {
	return Rect[U]{Size: s}
}

// RectFromPoints returns the rectangle spanning min to max.
func RectFromPoints[U Unit](topLeft, bottomRight Point[U]) Rect[U] {
	return Rect[U]{
		Origin: topLeft,
		Size:   Size[U]{Width: bottomRight.X - topLeft.X, Height: bottomRight.Y - topLeft.Y},
	}
}

// Min returns the top-left corner.
func (r Rect[U]) Min() Point[U] {
	return r.Origin
}

// Max returns the bottom-right corner.
func (r Rect[U]) Max() Point[U] {
	return Point[U]{X: r.Origin.X + r.Size.Width, Y: r.Origin.Y + r.Size.Height}
}

// Center returns the middle of the rectangle.
func (r Rect[U]) Center() Point[U] {
	return Point[U]{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect[U]) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// Translate returns r moved by the vector p.
func (r Rect[U]) Translate(p Point[U]) Rect[U] {
	r.Origin = r.Origin.Add(p)
	return r
}

// Inflate grows the rectangle by dx on the left and right and by dy on the
// top and bottom. Negative values shrink it; the resulting size never goes
// below zero.
func (r Rect[U]) Inflate(dx, dy float64) Rect[U] {
	out := Rect[U]{
		Origin: Point[U]{X: r.Origin.X - dx, Y: r.Origin.Y - dy},
		Size:   Size[U]{Width: r.Size.Width + 2*dx, Height: r.Size.Height + 2*dy},
	}
	if out.Size.Width < 0 {
		out.Origin.X = r.Center().X
		out.Size.Width = 0
	}
	if out.Size.Height < 0 {
		out.Origin.Y = r.Center().Y
		out.Size.Height = 0
	}
	return out
}

// Intersect returns the overlap of r and o. When the rectangles do not
// overlap the result is empty: its size is zero and its origin is clamped
// to where the overlap would start.
func (r Rect[U]) Intersect(o Rect[U]) Rect[U] {
	rmax, omax := r.Max(), o.Max()
	minX := max(r.Origin.X, o.Origin.X)
	minY := max(r.Origin.Y, o.Origin.Y)
	maxX := min(rmax.X, omax.X)
	maxY := min(rmax.Y, omax.Y)
	out := Rect[U]{Origin: Point[U]{X: minX, Y: minY}}
	if maxX > minX {
		out.Size.Width = maxX - minX
	}
	if maxY > minY {
		out.Size.Height = maxY - minY
	}
	return out
}

// Union returns the smallest rectangle containing both r and o.
// Empty rectangles are ignored.
func (r Rect[U]) Union(o Rect[U]) Rect[U] {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	rmax, omax := r.Max(), o.Max()
	return RectFromPoints(
		Point[U]{X: min(r.Origin.X, o.Origin.X), Y: min(r.Origin.Y, o.Origin.Y)},
		Point[U]{X: max(rmax.X, omax.X), Y: max(rmax.Y, omax.Y)},
	)
}

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect[U]) Contains(p Point[U]) bool {
	m := r.Max()
	return p.X >= r.Origin.X && p.X < m.X && p.Y >= r.Origin.Y && p.Y < m.Y
}

// ContainsRect reports whether o lies entirely inside r, allowing eps of
// slack on every edge. An empty o is contained by any r.
func (r Rect[U]) ContainsRect(o Rect[U], eps float64) bool {
	if o.IsEmpty() {
		return true
	}
	rm, om := r.Max(), o.Max()
	return o.Origin.X >= r.Origin.X-eps && o.Origin.Y >= r.Origin.Y-eps &&
		om.X <= rm.X+eps && om.Y <= rm.Y+eps
}
