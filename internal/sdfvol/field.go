package sdfvol

import (
	"sync"

	"github.com/chewxy/math32"
)

// Field is an analytic signed-distance function, used to seed volumes.
type Field func(p Vec3) Real

// Sphere returns the SDF of a sphere of the given radius centered at origin.
func Sphere(radius Real) Field {
	return func(p Vec3) Real { return p.Len() - radius }
}

// Box returns the SDF of an axis-aligned box with the given half extents.
func Box(half Vec3) Field {
	return func(p Vec3) Real {
		q := Vec3{math32.Abs(p.X) - half.X, math32.Abs(p.Y) - half.Y, math32.Abs(p.Z) - half.Z}
		outside := maxElem(q, Vec3{}).Len()
		inside := math32.Min(math32.Max(q.X, math32.Max(q.Y, q.Z)), 0)
		return outside + inside
	}
}

// Torus returns the SDF of a torus in the XZ plane.
func Torus(major, minor Real) Field {
	return func(p Vec3) Real {
		q := math32.Hypot(p.X, p.Z) - major
		return math32.Hypot(q, p.Y) - minor
	}
}

// Cylinder returns the SDF of a vertical cylinder of the given total height.
func Cylinder(height, radius Real) Field {
	return func(p Vec3) Real {
		dxz := math32.Hypot(p.X, p.Z) - radius
		dy := math32.Abs(p.Y) - height/2
		outside := math32.Hypot(math32.Max(dxz, 0), math32.Max(dy, 0))
		inside := math32.Min(math32.Max(dxz, dy), 0)
		return outside + inside
	}
}

// Capsule returns the SDF of a vertical capsule of the given total height.
func Capsule(height, radius Real) Field {
	halfH := height/2 - radius
	return func(p Vec3) Real {
		y := p.Y
		if y < -halfH {
			y = -halfH
		} else if y > halfH {
			y = halfH
		}
		return Vec3{p.X, p.Y - y, p.Z}.Len() - radius
	}
}

// Octahedron returns the (approximate) SDF of an octahedron.
func Octahedron(size Real) Field {
	return func(p Vec3) Real {
		return (math32.Abs(p.X) + math32.Abs(p.Y) + math32.Abs(p.Z) - size) * 0.57735027 // 1/sqrt(3)
	}
}

// Distance-field combinators.
func opUnion(d1, d2 Real) Real        { return math32.Min(d1, d2) }
func opSubtraction(d1, d2 Real) Real  { return math32.Max(d1, -d2) }
func opIntersection(d1, d2 Real) Real { return math32.Max(d1, d2) }

func opSmoothUnion(d1, d2, k Real) Real {
	h := math32.Max(k-math32.Abs(d1-d2), 0) / k
	return math32.Min(d1, d2) - h*h*k*0.25
}

// Combined is a demo scene: sphere smooth-joined with a torus, with a
// cylinder bored through the center.
func Combined() Field {
	sphere := Sphere(0.5)
	torus := Torus(0.45, 0.1)
	cyl := Cylinder(1.5, 0.15)
	return func(p Vec3) Real {
		d := opSmoothUnion(sphere(p), torus(p), 0.1)
		return opSubtraction(d, cyl(p))
	}
}

// Bunny is a rough bunny built from an ellipsoid body, a head and two
// capsule ears, smooth-joined.
func Bunny() Field {
	body := Sphere(1)
	head := Sphere(0.3)
	ear := Capsule(0.35, 0.06)
	return func(p Vec3) Real {
		db := body(Vec3{p.X / 0.6, (p.Y + 0.1) / 0.5, p.Z / 0.5}) * 0.5
		dh := head(Vec3{p.X, p.Y - 0.35, p.Z + 0.1})
		de1 := ear(Vec3{p.X + 0.1, p.Y - 0.65, p.Z + 0.05})
		de2 := ear(Vec3{p.X - 0.1, p.Y - 0.65, p.Z + 0.05})
		d := opSmoothUnion(db, dh, 0.15)
		d = opSmoothUnion(d, de1, 0.05)
		return opSmoothUnion(d, de2, 0.05)
	}
}

// Preset looks up a named seed field.
func Preset(name string) (Field, bool) {
	switch name {
	case "sphere":
		return Sphere(0.7), true
	case "box":
		return Box(Vec3{0.5, 0.5, 0.5}), true
	case "torus":
		return Torus(0.5, 0.2), true
	case "cylinder":
		return Cylinder(0.8, 0.3), true
	case "capsule":
		return Capsule(0.8, 0.25), true
	case "octahedron":
		return Octahedron(0.6), true
	case "combined":
		return Combined(), true
	case "bunny":
		return Bunny(), true
	}
	return nil, false
}

// FillField evaluates f at every voxel center, in parallel z-slabs.
func FillField(vol *Volume, f Field) {
	workers := workerCount()
	if workers > vol.Nz {
		workers = vol.Nz
	}
	per, rem := vol.Nz/workers, vol.Nz%workers

	var wg sync.WaitGroup
	wg.Add(workers)
	k0 := 0
	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		start, end := k0, k0+n
		k0 = end
		go func(start, end int) {
			defer wg.Done()
			for k := start; k < end; k++ {
				for j := 0; j < vol.Ny; j++ {
					base := vol.idx(0, j, k)
					for i := 0; i < vol.Nx; i++ {
						vol.Buf[base+i] = f(vol.VoxelCenter(i, j, k))
					}
				}
			}
		}(start, end)
	}
	wg.Wait()
}
