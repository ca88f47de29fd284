package sdfvol

import (
	"fmt"
	"sync"

	"github.com/chewxy/math32"
)

// Hit describes where a march found the isosurface.
type Hit struct {
	T      Real // distance along the (unit) ray direction
	Pos    Vec3 // world-space surface position
	Normal Vec3 // unit normal (central-difference gradient)
	Steps  int
}

// Render sphere-traces the volume and returns a row-major RGBA buffer of
// p.Width*p.Height pixels. It is a pure read of vol: identical inputs yield
// byte-identical output. Rows are dispatched across workers; per-pixel cost
// is bounded by MaxSteps.
func Render(vol *Volume, p RaymarchParams) ([]byte, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("render: output size %dx%d invalid", p.Width, p.Height)
	}
	if p.VolumeDim[0] != vol.Nx || p.VolumeDim[1] != vol.Ny || p.VolumeDim[2] != vol.Nz {
		return nil, fmt.Errorf("render: params dim %v vs volume %dx%dx%d: %w",
			p.VolumeDim, vol.Nx, vol.Ny, vol.Nz, ErrParamsGridMismatch)
	}

	w, h := p.Width, p.Height
	pix := make([]byte, w*h*4)

	tanHalf := math32.Tan(p.FOV * 0.5)
	aspect := Real(w) / Real(h)
	cam := p.Camera

	workers := workerCount()
	if workers > h {
		workers = h
	}
	rowsPer, rem := h/workers, h%workers

	var wg sync.WaitGroup
	wg.Add(workers)
	y0 := 0
	for wi := 0; wi < workers; wi++ {
		rows := rowsPer
		if wi < rem {
			rows++
		}
		start, end := y0, y0+rows
		y0 = end
		go func(start, end int) {
			defer wg.Done()
			for y := start; y < end; y++ {
				ndcY := (1 - 2*(Real(y)+0.5)/Real(h)) * tanHalf
				row := pix[y*w*4:]
				for x := 0; x < w; x++ {
					ndcX := (2*(Real(x)+0.5)/Real(w) - 1) * tanHalf * aspect
					dir := cam.Forward.
						Add(cam.Right.Mul(ndcX)).
						Add(cam.Up.Mul(ndcY)).
						Norm()
					hit, ok := march(vol, cam.Position, dir, p.VolumeMin, p.VolumeMax, p.IsoValue)
					o := x * 4
					if !ok {
						row[o+0] = Background[0]
						row[o+1] = Background[1]
						row[o+2] = Background[2]
						row[o+3] = Background[3]
						continue
					}
					r, g, b := shade(hit.Normal)
					row[o+0] = r
					row[o+1] = g
					row[o+2] = b
					row[o+3] = 255
				}
			}
		}(start, end)
	}
	wg.Wait()

	return pix, nil
}

// TraceRay marches a single ray against the volume's own bounds. dir need
// not be normalized. Shared by Render-style callers and cursor picking.
func TraceRay(vol *Volume, origin, dir Vec3, iso Real) (Hit, bool) {
	d := dir.Norm()
	if d.Len() == 0 {
		return Hit{}, false
	}
	minB, maxB := vol.Bounds()
	return march(vol, origin, d, minB, maxB, iso)
}

// march advances a unit ray through [minB,maxB], stepping by the sampled
// distance (Lipschitz 1) with a minimum-step floor, until the field drops to
// the isovalue, the ray exits the box, or the step budget runs out.
func march(vol *Volume, o, d Vec3, minB, maxB Vec3, iso Real) (Hit, bool) {
	rr := makeRecips(d)
	ok, t0, t1 := rayBox(o, minB, maxB, rr)
	if !ok {
		return Hit{}, false
	}
	t := t0
	if t < 0 {
		t = 0 // origin already inside the box
	}

	eps := vol.hitEps
	prevT, prevS := t, Real(0)
	for step := 0; step < MaxSteps; step++ {
		pos := o.Add(d.Mul(t))
		s := vol.Sample(vol.WorldToVoxel(pos)) - iso

		if s <= eps {
			tHit := t
			if step > 0 && s < -eps && prevS > s {
				// overshot: secant refinement between the bracketing samples
				tHit = prevT + (t-prevT)*prevS/(prevS-s)
			}
			hp := o.Add(d.Mul(tHit))
			n := vol.gradient(hp).Norm()
			if n.Len() == 0 {
				n = d.Mul(-1)
			}
			return Hit{T: tHit, Pos: hp, Normal: n, Steps: step}, true
		}

		adv := s
		if adv < vol.minStep {
			adv = vol.minStep
		}
		prevT, prevS = t, s
		t += adv
		if t > t1 {
			return Hit{}, false // exits the volume without crossing
		}
	}
	return Hit{}, false // budget exhausted, treated as miss
}

func shade(n Vec3) (uint8, uint8, uint8) {
	diff := n.Dot(lightDir)
	if diff < 0 {
		diff = 0
	}
	k := ambient + (1-ambient)*diff
	return toByte(baseColor.X * k), toByte(baseColor.Y * k), toByte(baseColor.Z * k)
}

func toByte(v Real) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math32.Round(v * 255))
}
