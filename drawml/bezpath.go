package drawml

import "fmt"

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is the element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a Bézier path consisting of lines and quadratic and cubic
// Béziers.
type BezPath []PathElement

func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// ControlBox returns the smallest rectangle enclosing every on-curve and
// control point of the path. It contains the bounding box of the path but
// may be larger, as control points of a Bézier need not lie on the curve.
func (p BezPath) ControlBox() Rect {
	var cbox Rect
	first := true
	add := func(pt Point) {
		if first {
			cbox = NewRectFromPoints(pt, pt)
			first = false
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(el.P0)
		case QuadToKind:
			add(el.P0)
			add(el.P1)
		case CubicToKind:
			add(el.P0)
			add(el.P1)
			add(el.P2)
		}
	}
	return cbox
}

func (p BezPath) IsNaN() bool {
	for _, el := range p {
		if el.IsNaN() {
			return true
		}
	}
	return false
}
