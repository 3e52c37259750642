package drawml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Guide is a named, shape-local geometric parameter. Its formula is either a
// literal number or a guide formula expression.
type Guide struct {
	Name    string
	Formula string
}

// UnresolvedVariableError is returned when a token is neither a literal
// number, a preset name, a shape guide, nor a formula invocation.
type UnresolvedVariableError struct {
	Name string
}

func (err *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("drawml: unresolved variable %q", err.Name)
}

// Geometry resolves guide values for a single shape. It holds the shape's
// width and height and the raw definitions of its guides. A Geometry is
// immutable after construction and safe for concurrent use.
type Geometry struct {
	guides map[string]string
}

// NewGeometry returns a Geometry for a shape of the given size. Guide lists
// are applied in argument order; the last definition of a name wins, and a
// guide may shadow w or h.
func NewGeometry(width, height float64, guides ...[]Guide) *Geometry {
	m := map[string]string{
		"w": strconv.FormatFloat(width, 'g', -1, 64),
		"h": strconv.FormatFloat(height, 'g', -1, 64),
	}
	for _, gl := range guides {
		for _, gd := range gl {
			m[gd.Name] = gd.Formula
		}
	}
	return &Geometry{guides: m}
}

// Value resolves a token to a number. Resolution stages, first success wins:
// literal number, preset guide, shape guide, formula expression. Presets and
// guides resolve recursively, re-evaluated from their raw definitions on
// every call.
func (g *Geometry) Value(token string) (float64, error) {
	if x, err := strconv.ParseFloat(token, 64); err == nil {
		return x, nil
	}
	if fmla, ok := presetGuides[token]; ok {
		return g.Value(fmla)
	}
	if fmla, ok := g.guides[token]; ok {
		return g.Value(fmla)
	}
	x, err := Evaluate(token, g.Value)
	var unknown *UnknownFormulaError
	if errors.As(err, &unknown) && len(strings.Fields(token)) < 2 {
		// A bare name, not a malformed formula.
		return 0, &UnresolvedVariableError{Name: token}
	}
	return x, err
}

// Point resolves a raw path point's coordinate attributes.
func (g *Geometry) Point(raw RawPoint) (Point, error) {
	x, err := g.Value(raw.X)
	if err != nil {
		return Point{}, err
	}
	y, err := g.Value(raw.Y)
	if err != nil {
		return Point{}, err
	}
	return Pt(x, y), nil
}
