package drawml

import (
	"fmt"
)

// RawPoint is an unresolved coordinate pair as extracted from a path point:
// each attribute is a literal, a guide name, or a formula, resolved through
// [Geometry.Value].
type RawPoint struct {
	X string
	Y string
}

type PathCommandKind int

const (
	// Start a new subpath at the point.
	MoveCmd PathCommandKind = iota + 1
	// Draw a line to the point.
	LineCmd
	// Draw a quadratic Bézier; P0 is the control point, P1 the endpoint.
	QuadCmd
	// Draw a cubic Bézier; P0 and P1 are the control points, P2 the endpoint.
	CubicCmd
	// Draw an elliptical arc from the current point to P0.
	ArcCmd
	// Close off the current subpath.
	CloseCmd
)

// PathCommand is one drawing command of a raw shape path, with all operands
// still in attribute-string form. Arc attributes follow the same conventions
// as guide formulas: any operand may name a guide, and Rotation is in
// 60000ths of a degree. LargeArc and Sweep are set when they resolve to a
// nonzero value.
type PathCommand struct {
	Kind PathCommandKind
	P0   RawPoint
	P1   RawPoint
	P2   RawPoint

	RadiusX  string
	RadiusY  string
	Rotation string
	LargeArc string
	Sweep    string
}

// RawPath is an ordered list of path commands for one outline of a shape.
type RawPath struct {
	Commands []PathCommand
}

// Shape is the record handed over by the document extractor for a single
// shape: its size, its guide definitions, and its raw outline paths.
type Shape struct {
	Width  float64
	Height float64

	// Shape guides are applied first, adjustment guides second, so an
	// adjusted value shadows the shape's default for the same name.
	AdjustGuides []Guide
	ShapeGuides  []Guide

	Paths []RawPath
}

// Path resolves a raw path into line and cubic-curve elements. Arc commands
// are approximated with cubic Béziers via [ArcToBeziers]. The first command
// of every subpath must be a move.
func (g *Geometry) Path(p RawPath) (BezPath, error) {
	var path BezPath
	var cur Point
	open := false
	for i, cmd := range p.Commands {
		if !open && cmd.Kind != MoveCmd {
			return nil, fmt.Errorf("drawml: path command %d before initial move", i)
		}
		switch cmd.Kind {
		case MoveCmd:
			pt, err := g.Point(cmd.P0)
			if err != nil {
				return nil, fmt.Errorf("drawml: path command %d: %w", i, err)
			}
			path.Push(MoveTo(pt))
			cur = pt
			open = true
		case LineCmd:
			pt, err := g.Point(cmd.P0)
			if err != nil {
				return nil, fmt.Errorf("drawml: path command %d: %w", i, err)
			}
			path.Push(LineTo(pt))
			cur = pt
		case QuadCmd:
			c1, err := g.Point(cmd.P0)
			if err != nil {
				return nil, fmt.Errorf("drawml: path command %d: %w", i, err)
			}
			end, err := g.Point(cmd.P1)
			if err != nil {
				return nil, fmt.Errorf("drawml: path command %d: %w", i, err)
			}
			path.Push(QuadTo(c1, end))
			cur = end
		case CubicCmd:
			c1, err := g.Point(cmd.P0)
			if err != nil {
				return nil, fmt.Errorf("drawml: path command %d: %w", i, err)
			}
			c2, err := g.Point(cmd.P1)
			if err != nil {
				return nil, fmt.Errorf("drawml: path command %d: %w", i, err)
			}
			end, err := g.Point(cmd.P2)
			if err != nil {
				return nil, fmt.Errorf("drawml: path command %d: %w", i, err)
			}
			path.Push(CubicTo(c1, c2, end))
			cur = end
		case ArcCmd:
			segs, end, err := g.arc(cmd, cur)
			if err != nil {
				return nil, fmt.Errorf("drawml: path command %d: %w", i, err)
			}
			for _, seg := range segs {
				path.Push(CubicTo(seg.P1, seg.P2, seg.P3))
			}
			cur = end
		case CloseCmd:
			path.Push(ClosePath())
			open = false
		default:
			return nil, fmt.Errorf("drawml: path command %d: unknown kind %d", i, cmd.Kind)
		}
	}
	return path, nil
}

func (g *Geometry) arc(cmd PathCommand, cur Point) ([]CubicBez, Point, error) {
	end, err := g.Point(cmd.P0)
	if err != nil {
		return nil, Point{}, err
	}
	rx, err := g.Value(cmd.RadiusX)
	if err != nil {
		return nil, Point{}, err
	}
	ry, err := g.Value(cmd.RadiusY)
	if err != nil {
		return nil, Point{}, err
	}
	rot, err := g.Value(cmd.Rotation)
	if err != nil {
		return nil, Point{}, err
	}
	large, err := g.Value(cmd.LargeArc)
	if err != nil {
		return nil, Point{}, err
	}
	sweep, err := g.Value(cmd.Sweep)
	if err != nil {
		return nil, Point{}, err
	}
	segs, err := ArcToBeziers(Vec(rx, ry), stAngleToRadians(rot), large != 0, sweep != 0, cur, end)
	if err != nil {
		return nil, Point{}, err
	}
	return segs, end, nil
}

// ShapePaths builds the geometry context for a shape and resolves all of its
// paths.
func ShapePaths(s Shape) ([]BezPath, error) {
	g := NewGeometry(s.Width, s.Height, s.ShapeGuides, s.AdjustGuides)
	paths := make([]BezPath, len(s.Paths))
	for i, p := range s.Paths {
		bp, err := g.Path(p)
		if err != nil {
			return nil, fmt.Errorf("drawml: path %d: %w", i, err)
		}
		paths[i] = bp
	}
	return paths, nil
}
