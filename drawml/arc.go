package drawml

import (
	"math"
)

// DegenerateArcError is returned by [ArcToBeziers] for inputs that do not
// describe an ellipse: zero radii, coincident endpoints, or non-finite
// values. The reference parameterization divides by radii and by the
// endpoint chord, so such inputs are rejected up front instead of
// propagating NaN into the output geometry.
type DegenerateArcError struct {
	Reason string
}

func (err *DegenerateArcError) Error() string {
	return "drawml: degenerate arc: " + err.Reason
}

// ArcToBeziers approximates an elliptical arc with a sequence of cubic
// Bézier segments, for consumers that only support line and cubic-curve
// primitives.
//
// The arc is given in SVG endpoint parameterization: an ellipse with the
// given radii (sign-insensitive), rotated by xRotation radians, drawn from
// p1 to p2. Of the four candidate arcs, largeArc selects the one spanning
// more than half a turn and sweep the one running in the direction of
// increasing angle. Radii too small to span the endpoints are scaled up
// uniformly, per the SVG out-of-range correction.
//
// Each returned segment spans at most π/4 of the ellipse parameter, with the
// final segment covering the remainder. The result is never empty: the
// first segment starts at p1 and the last ends at p2, up to rounding.
func ArcToBeziers(radii Vec2, xRotation float64, largeArc, sweep bool, p1, p2 Point) ([]CubicBez, error) {
	r := Vec(math.Abs(radii.X), math.Abs(radii.Y))
	switch {
	case r.IsNaN() || r.IsInf() || p1.IsNaN() || p1.IsInf() || p2.IsNaN() || p2.IsInf() ||
		math.IsNaN(xRotation) || math.IsInf(xRotation, 0):
		return nil, &DegenerateArcError{Reason: "non-finite input"}
	case r.X == 0 || r.Y == 0:
		return nil, &DegenerateArcError{Reason: "zero radius"}
	case p1 == p2:
		return nil, &DegenerateArcError{Reason: "coincident endpoints"}
	}

	// Half the chord vector, in ellipse-local coordinates.
	p := p1.Sub(p2).Div(2).Rotate(-xRotation)

	ratio := p.X*p.X/(r.X*r.X) + p.Y*p.Y/(r.Y*r.Y)
	if ratio > 1 {
		r = r.Mul(math.Sqrt(ratio))
	}

	rxSq, rySq := r.X*r.X, r.Y*r.Y
	pxSq, pySq := p.X*p.X, p.Y*p.Y
	dq := rxSq*pySq + rySq*pxSq
	q := math.Sqrt(max(0, (rxSq*rySq-dq)/dq))
	if largeArc == sweep {
		q = -q
	}

	// Center, first in ellipse-local space, then in the original frame.
	cp := Vec(q*r.X*p.Y/r.Y, -q*r.Y*p.X/r.X)
	c := p1.Midpoint(p2).Translate(cp.Rotate(xRotation))

	start := Vec((p.X-cp.X)/r.X, (p.Y-cp.Y)/r.Y)
	end := Vec((-p.X-cp.X)/r.X, (-p.Y-cp.Y)/r.Y)

	lambda1 := svgAngle(Vec(1, 0), start)
	delta := svgAngle(start, end)
	delta -= 2 * math.Pi * math.Floor(delta/(2*math.Pi))
	if !sweep {
		delta -= 2 * math.Pi
	}
	lambda2 := lambda1 + delta

	const dt = math.Pi / 4
	var curves []CubicBez
	t := lambda1
	if delta >= 0 {
		for t+dt < lambda2 {
			curves = append(curves, arcSegment(c, r, xRotation, t, t+dt))
			t += dt
		}
	} else {
		for t-dt > lambda2 {
			curves = append(curves, arcSegment(c, r, xRotation, t, t-dt))
			t -= dt
		}
	}
	curves = append(curves, arcSegment(c, r, xRotation, t, lambda2))
	return curves, nil
}

// svgAngle returns the signed angle from u to v, in (−π, π]. Computed with
// atan2 rather than a clamped acos: near parallel vectors acos loses half
// the precision of its argument, which the radii then amplify into visible
// endpoint drift.
func svgAngle(u, v Vec2) float64 {
	return math.Atan2(u.Cross(v), u.Dot(v))
}

// arcSegment returns the cubic approximating the sub-arc [eta1, eta2] of the
// ellipse centered on c. The control arm length alpha is the closed-form
// optimum for a single cubic per sub-arc; see
// https://www.spaceroots.org/documents/ellipse/elliptical-arc.pdf.
func arcSegment(c Point, r Vec2, xRotation, eta1, eta2 float64) CubicBez {
	half := math.Tan((eta2 - eta1) / 2)
	alpha := math.Sin(eta2-eta1) * (math.Sqrt(4+3*half*half) - 1) / 3
	p1 := c.Translate(sampleEllipse(r, xRotation, eta1))
	d1 := ellipseDerivative(r, xRotation, eta1)
	p2 := c.Translate(sampleEllipse(r, xRotation, eta2))
	d2 := ellipseDerivative(r, xRotation, eta2)
	return CubicBez{
		P0: p1,
		P1: p1.Translate(d1.Mul(alpha)),
		P2: p2.Translate(d2.Mul(-alpha)),
		P3: p2,
	}
}

// sampleEllipse takes the ellipse radii, how the radii are rotated, and the
// angular parameter, and returns a point on the origin-centered ellipse.
func sampleEllipse(radii Vec2, xRotation, eta float64) Vec2 {
	sin, cos := math.Sincos(eta)
	return Vec(radii.X*cos, radii.Y*sin).Rotate(xRotation)
}

// ellipseDerivative is the derivative of sampleEllipse with respect to eta.
func ellipseDerivative(radii Vec2, xRotation, eta float64) Vec2 {
	sin, cos := math.Sincos(eta)
	return Vec(-radii.X*sin, radii.Y*cos).Rotate(xRotation)
}
