package sdfvol

import "testing"

func TestRayBoxHitAndMiss(t *testing.T) {
	minP := Vec3{-1, -1, -1}
	maxP := Vec3{1, 1, 1}

	o := Vec3{-2, 0, 0}
	d := Vec3{1, 0, 0}
	ok, tnear, tfar := rayBox(o, minP, maxP, makeRecips(d))
	if !ok || tnear != 1 || tfar != 3 {
		t.Fatalf("expected hit with [1,3], got ok=%v tnear=%.6g tfar=%.6g", ok, tnear, tfar)
	}

	// parallel to the slab, outside it
	o2 := Vec3{-2, 2, 0}
	ok2, _, _ := rayBox(o2, minP, maxP, makeRecips(d))
	if ok2 {
		t.Fatal("expected no hit for parallel outside slab")
	}

	// parallel to the slab, inside it
	o3 := Vec3{-2, 0.5, 0.5}
	ok3, t3, _ := rayBox(o3, minP, maxP, makeRecips(d))
	if !ok3 || t3 != 1 {
		t.Fatalf("parallel inside slab: ok=%v tnear=%.6g", ok3, t3)
	}
}

func TestRayBoxOriginInside(t *testing.T) {
	minP := Vec3{-1, -1, -1}
	maxP := Vec3{1, 1, 1}

	ok, tnear, tfar := rayBox(Vec3{0, 0, 0}, minP, maxP, makeRecips(Vec3{0, 0, 1}))
	if !ok {
		t.Fatal("expected hit from inside")
	}
	if tnear > 0 {
		t.Fatalf("inside origin should give non-positive tnear, got %.6g", tnear)
	}
	if tfar != 1 {
		t.Fatalf("exit distance: %.6g", tfar)
	}
}

func TestRayBoxBehind(t *testing.T) {
	minP := Vec3{-1, -1, -1}
	maxP := Vec3{1, 1, 1}

	// box entirely behind the ray
	ok, _, _ := rayBox(Vec3{5, 0, 0}, minP, maxP, makeRecips(Vec3{1, 0, 0}))
	if ok {
		t.Fatal("expected miss for box behind origin")
	}
}
