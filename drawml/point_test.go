package drawml

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(10, -5), Pt(10, 0).Sub(Pt(0, 5)))
	diff(t, Pt(5, 5), Pt(0, 0).Midpoint(Pt(10, 10)))
	diff(t, Pt(2.5, 0), Pt(0, 0).Lerp(Pt(10, 0), 0.25))
	diff(t, Vec(-10, 5), Vec(10, -5).Negate())
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVec2Rotate(t *testing.T) {
	diff(t, Vec(0, 1), Vec(1, 0).Rotate(math.Pi/2), approx(1e-12))
	diff(t, Vec(-1, 0), Vec(1, 0).Rotate(math.Pi), approx(1e-12))
	diff(t, Vec(1, 0), Vec(1, 0).Rotate(math.Pi/4).Rotate(-math.Pi/4), approx(1e-12))
}

func TestVec2Angle(t *testing.T) {
	if a := Vec(1, 1).Angle(); math.Abs(a-math.Pi/4) > 1e-12 {
		t.Errorf("got angle %v, want π/4", a)
	}
	if a := Vec(0, -1).Angle(); math.Abs(a+math.Pi/2) > 1e-12 {
		t.Errorf("got angle %v, want -π/2", a)
	}
}
