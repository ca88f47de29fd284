package sdfvol

import "github.com/chewxy/math32"

type rayRecips struct {
	invX, invY, invZ Real
	parX, parY, parZ bool // parallel flags (|D| < eps)
}

func makeRecips(d Vec3) rayRecips {
	rr := rayRecips{
		parX: math32.Abs(d.X) < parEps,
		parY: math32.Abs(d.Y) < parEps,
		parZ: math32.Abs(d.Z) < parEps,
	}
	if !rr.parX {
		rr.invX = 1 / d.X
	}
	if !rr.parY {
		rr.invY = 1 / d.Y
	}
	if !rr.parZ {
		rr.invZ = 1 / d.Z
	}
	return rr
}

// rayBox intersects a ray with an axis-aligned box via the slab method and
// returns the entry and exit distances. An origin inside the box yields a
// negative tmin; callers clamp it to zero to start marching in place.
func rayBox(o Vec3, minP, maxP Vec3, rr rayRecips) (bool, Real, Real) {
	tmin, tmax := Real(math32.Inf(-1)), Real(math32.Inf(1))

	// X
	if !rr.parX {
		t1 := (minP.X - o.X) * rr.invX
		t2 := (maxP.X - o.X) * rr.invX
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if o.X < minP.X || o.X > maxP.X {
		return false, 0, 0
	}

	// Y
	if !rr.parY {
		t1 := (minP.Y - o.Y) * rr.invY
		t2 := (maxP.Y - o.Y) * rr.invY
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if o.Y < minP.Y || o.Y > maxP.Y {
		return false, 0, 0
	}

	// Z
	if !rr.parZ {
		t1 := (minP.Z - o.Z) * rr.invZ
		t2 := (maxP.Z - o.Z) * rr.invZ
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if o.Z < minP.Z || o.Z > maxP.Z {
		return false, 0, 0
	}

	if tmax < 0 || tmin > tmax {
		return false, 0, 0
	}
	return true, tmin, tmax
}
