package sdfvol

import (
	"sync"

	"github.com/chewxy/math32"
)

// Region is the inclusive integer-voxel bounding box of the samples a
// sculpt call wrote, for incremental redraw. A stroke whose influence
// reaches no voxel center yields an empty region. The zero value is empty.
type Region struct {
	MinX, MinY, MinZ int
	MaxX, MaxY, MaxZ int
	ok               bool
}

func (r Region) Empty() bool { return !r.ok }

func (r Region) union(o Region) Region {
	if !o.ok {
		return r
	}
	if !r.ok {
		return o
	}
	if o.MinX < r.MinX {
		r.MinX = o.MinX
	}
	if o.MinY < r.MinY {
		r.MinY = o.MinY
	}
	if o.MinZ < r.MinZ {
		r.MinZ = o.MinZ
	}
	if o.MaxX > r.MaxX {
		r.MaxX = o.MaxX
	}
	if o.MaxY > r.MaxY {
		r.MaxY = o.MaxY
	}
	if o.MaxZ > r.MaxZ {
		r.MaxZ = o.MaxZ
	}
	return r
}

func (r *Region) include(i, j, k int) {
	if !r.ok {
		*r = Region{MinX: i, MinY: j, MinZ: k, MaxX: i, MaxY: j, MaxZ: k, ok: true}
		return
	}
	if i < r.MinX {
		r.MinX = i
	} else if i > r.MaxX {
		r.MaxX = i
	}
	if j < r.MinY {
		r.MinY = j
	} else if j > r.MaxY {
		r.MaxY = j
	}
	if k < r.MinZ {
		r.MinZ = k
	} else if k > r.MaxZ {
		r.MaxZ = k
	}
}

// Sculpt applies one tool stroke to the volume in place and returns the
// changed region. With HasPrevious set the influence region is the capsule
// swept from Previous to Position; otherwise a sphere around Position.
//
// Each voxel blends its old value toward the tool's own distance field
// (union for Add, subtraction for Remove), weighted by a smoothstep falloff
// that reaches zero at Radius and scaled by SmoothFactor. Blending toward a
// target, rather than flat-adding, makes repeated low-strength strokes
// converge on the tool shape instead of diverging. The edit is cumulative:
// applying the same stroke twice moves the field further.
//
// Voxels outside the grid are silently ignored; the grid never reallocates.
// A non-positive radius or smooth factor is a no-op.
func Sculpt(vol *Volume, p SculptParams) Region {
	if p.Radius <= 0 || p.SmoothFactor <= 0 {
		return Region{}
	}
	smooth := clamp01(p.SmoothFactor)

	a := p.Position
	b := a
	if p.HasPrevious {
		b = p.Previous
	}

	// Integer-voxel bounding cube of the influence region, clipped to the grid.
	rad := Vec3{p.Radius, p.Radius, p.Radius}
	lo := vol.WorldToVoxel(minElem(a, b).Sub(rad))
	hi := vol.WorldToVoxel(maxElem(a, b).Add(rad))
	iMin, iMax := clipAxis(lo.X, hi.X, vol.Nx)
	jMin, jMax := clipAxis(lo.Y, hi.Y, vol.Ny)
	kMin, kMax := clipAxis(lo.Z, hi.Z, vol.Nz)
	if iMin > iMax || jMin > jMax || kMin > kMax {
		return Region{}
	}

	sculptSpan := func(k0, k1 int) Region {
		var reg Region
		for k := k0; k <= k1; k++ {
			for j := jMin; j <= jMax; j++ {
				base := vol.idx(iMin, j, k)
				for i := iMin; i <= iMax; i++ {
					c := vol.VoxelCenter(i, j, k)
					d := segDist(c, b, a)
					if d > p.Radius {
						continue
					}
					h := 1 - d/p.Radius
					w := smooth * h * h * (3 - 2*h) // smoothstep falloff, zero at the rim

					idx := base + (i - iMin)
					old := vol.Buf[idx]
					tool := d - p.Radius // tool's own signed distance at this voxel
					var target Real
					if p.Mode == ModeAdd {
						target = math32.Min(old, tool) // union: pull the surface outward
					} else {
						target = math32.Max(old, -tool) // subtraction: carve away
					}
					vol.Buf[idx] = old + (target-old)*w
					reg.include(i, j, k)
				}
			}
		}
		return reg
	}

	// Voxels are independent, so large regions split into z-slabs across
	// workers; slabs are disjoint and need no locking.
	voxels := (iMax - iMin + 1) * (jMax - jMin + 1) * (kMax - kMin + 1)
	slabs := kMax - kMin + 1
	workers := workerCount()
	if voxels < sculptParallelMin || workers < 2 || slabs < 2 {
		return sculptSpan(kMin, kMax)
	}

	if workers > slabs {
		workers = slabs
	}
	per, rem := slabs/workers, slabs%workers
	regions := make([]Region, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	k0 := kMin
	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		start, end := k0, k0+n-1
		k0 = end + 1
		go func(w, start, end int) {
			defer wg.Done()
			regions[w] = sculptSpan(start, end)
		}(w, start, end)
	}
	wg.Wait()

	var region Region
	for _, r := range regions {
		region = region.union(r)
	}
	return region
}

// clipAxis converts a continuous voxel-coordinate span to the inclusive
// range of voxel-center indices it covers, clipped to [0, n).
func clipAxis(lo, hi Real, n int) (int, int) {
	// voxel center i sits at continuous coordinate i+0.5
	i0 := int(math32.Floor(lo - 0.5))
	i1 := int(math32.Ceil(hi - 0.5))
	if i0 < 0 {
		i0 = 0
	}
	if i1 > n-1 {
		i1 = n - 1
	}
	return i0, i1
}

// segDist returns the distance from p to the segment between a and b
// (a point when the segment degenerates).
func segDist(p, a, b Vec3) Real {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	t := Real(0)
	if denom > 0 {
		t = p.Sub(a).Dot(ab) / denom
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return p.Sub(a.Add(ab.Mul(t))).Len()
}
