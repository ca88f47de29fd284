package sdfvol

import (
	"math"
	"testing"
)

func TestVectorOps(t *testing.T) {
	v := Vec3{1, 2, 3}
	w := Vec3{-1, 0.5, 2}
	s := Real(3)

	add := v.Add(w)
	if add != (Vec3{0, 2.5, 5}) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	sub := v.Sub(w)
	if sub != (Vec3{2, 1.5, 1}) {
		t.Fatalf("Sub mismatch: %+v", sub)
	}
	mul := v.Mul(s)
	if mul != (Vec3{3, 6, 9}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	dot := v.Dot(w)
	wantDot := Real(1*(-1) + 2*0.5 + 3*2)
	if dot != wantDot {
		t.Fatalf("Dot mismatch: got %.12g want %.12g", dot, wantDot)
	}
	l := v.Len()
	if math.Abs(float64(l)-math.Sqrt(14)) > 1e-6 {
		t.Fatalf("Len mismatch: %.12g", l)
	}
	n := v.Norm()
	if math.Abs(float64(n.Len()-1)) > 1e-6 {
		t.Fatalf("Norm not unit: %.12g", n.Len())
	}
}

func TestVectorCross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if x.Cross(y) != (Vec3{0, 0, 1}) {
		t.Fatalf("x cross y != z: %+v", x.Cross(y))
	}
	if y.Cross(x) != (Vec3{0, 0, -1}) {
		t.Fatalf("y cross x != -z: %+v", y.Cross(x))
	}
}

func TestVectorElemOps(t *testing.T) {
	a := Vec3{2, 6, 8}
	b := Vec3{2, 3, 4}
	if a.DivElem(b) != (Vec3{1, 2, 2}) {
		t.Fatalf("DivElem mismatch: %+v", a.DivElem(b))
	}
	if a.MulElem(b) != (Vec3{4, 18, 32}) {
		t.Fatalf("MulElem mismatch: %+v", a.MulElem(b))
	}
	if minElem(a, b) != (Vec3{2, 3, 4}) || maxElem(a, b) != (Vec3{2, 6, 8}) {
		t.Fatal("minElem/maxElem mismatch")
	}
}
