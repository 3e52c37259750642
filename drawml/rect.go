package drawml

import "math"

// Rect is an axis-aligned rectangle, represented by its minimum and maximum
// points.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRectFromPoints returns the smallest rectangle that contains both points.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle, with (X0, Y0) at the top left and (X1, Y1) at
// the bottom right.
func (r Rect) Abs() Rect {
	return Rect{
		min(r.X0, r.X1),
		min(r.Y0, r.Y1),
		max(r.X0, r.X1),
		max(r.Y0, r.Y1),
	}
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing both rectangles.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		min(r.X0, o.X0),
		min(r.Y0, o.Y0),
		max(r.X1, o.X1),
		max(r.Y1, o.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing the rectangle and the
// point.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		min(r.X0, pt.X),
		min(r.Y0, pt.Y),
		max(r.X1, pt.X),
		max(r.Y1, pt.Y),
	}
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y1)
}
