package sdfvol

import (
	"errors"

	"github.com/chewxy/math32"
)

var (
	ErrInvalidDimensions  = errors.New("volume dimensions must be positive")
	ErrInvalidVoxelSize   = errors.New("voxel size components must be positive")
	ErrParamsGridMismatch = errors.New("raymarch params do not match the supplied volume")
)

// Volume stores a signed-distance field sampled on a regular 3D grid.
// Samples live at voxel centers; negative values are inside the surface,
// positive outside. The flat buffer layout (x + y*Nx + z*Nx*Ny) is the same
// one compute kernels and .volume files consume.
type Volume struct {
	Nx, Ny, Nz int
	VoxelSize  Vec3
	Origin     Vec3 // world-space minimum corner of voxel (0,0,0)
	Buf        []Real

	// cached strides, bounds & tolerances
	strideY, strideZ int
	minB, maxB       Vec3
	hitEps           Real
	minStep          Real
}

// NewVolume allocates a grid with every sample set to fill and precomputes
// strides, world bounds and march tolerances. Dimensions and voxel size are
// immutable afterwards; resizing means building a new volume.
func NewVolume(nx, ny, nz int, voxelSize, origin Vec3, fill Real) (*Volume, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, ErrInvalidDimensions
	}
	if voxelSize.X <= 0 || voxelSize.Y <= 0 || voxelSize.Z <= 0 {
		return nil, ErrInvalidVoxelSize
	}

	total := nx * ny * nz
	buf := make([]Real, total)
	if fill != 0 {
		for i := range buf {
			buf[i] = fill
		}
	}

	span := Vec3{Real(nx) * voxelSize.X, Real(ny) * voxelSize.Y, Real(nz) * voxelSize.Z}
	minVoxel := math32.Min(voxelSize.X, math32.Min(voxelSize.Y, voxelSize.Z))

	v := &Volume{
		Nx:        nx,
		Ny:        ny,
		Nz:        nz,
		VoxelSize: voxelSize,
		Origin:    origin,
		Buf:       buf,

		strideY: nx,
		strideZ: nx * ny,
		minB:    origin,
		maxB:    origin.Add(span),
		hitEps:  hitEpsVoxels * minVoxel,
		minStep: minStepVoxels * minVoxel,
	}
	DebugLog("Created volume %dx%dx%d, voxel=(%.4f, %.4f, %.4f), origin=(%.3f, %.3f, %.3f), fill=%.3f",
		nx, ny, nz, voxelSize.X, voxelSize.Y, voxelSize.Z, origin.X, origin.Y, origin.Z, fill)
	return v, nil
}

// Bounds returns the world-space axis-aligned box enclosing the grid.
func (v *Volume) Bounds() (Vec3, Vec3) { return v.minB, v.maxB }

// WorldToVoxel maps a world position to a continuous voxel-space coordinate.
// Not bounds-checked; the origin maps to (0,0,0).
func (v *Volume) WorldToVoxel(p Vec3) Vec3 {
	return p.Sub(v.Origin).DivElem(v.VoxelSize)
}

// VoxelCenter returns the world-space center of voxel (i,j,k).
func (v *Volume) VoxelCenter(i, j, k int) Vec3 {
	return v.Origin.Add(Vec3{Real(i) + 0.5, Real(j) + 0.5, Real(k) + 0.5}.MulElem(v.VoxelSize))
}

// Flat buffer index helper.
func (v *Volume) idx(i, j, k int) int {
	return i + j*v.strideY + k*v.strideZ
}

// cellAxis resolves one axis of a trilinear lookup: the continuous
// center-relative coordinate f picks cell [i0,i1] and fraction t, clamped to
// the grid so boundary coordinates never wrap or extrapolate.
func cellAxis(f Real, n int) (i0, i1 int, t Real) {
	if n == 1 {
		return 0, 0, 0
	}
	if f <= 0 {
		return 0, 0, 0
	}
	if f >= Real(n-1) {
		return n - 1, n - 1, 0
	}
	fl := math32.Floor(f)
	i0 = int(fl)
	return i0, i0 + 1, f - fl
}

// Sample returns the trilinearly interpolated distance at a continuous
// voxel-space coordinate. Out-of-range coordinates clamp to the nearest
// valid cell (clamping, not a sentinel, so marches across the boundary see
// no seams).
func (v *Volume) Sample(vc Vec3) Real {
	i0, i1, tx := cellAxis(vc.X-0.5, v.Nx)
	j0, j1, ty := cellAxis(vc.Y-0.5, v.Ny)
	k0, k1, tz := cellAxis(vc.Z-0.5, v.Nz)

	d000 := v.Buf[v.idx(i0, j0, k0)]
	d100 := v.Buf[v.idx(i1, j0, k0)]
	d010 := v.Buf[v.idx(i0, j1, k0)]
	d110 := v.Buf[v.idx(i1, j1, k0)]
	d001 := v.Buf[v.idx(i0, j0, k1)]
	d101 := v.Buf[v.idx(i1, j0, k1)]
	d011 := v.Buf[v.idx(i0, j1, k1)]
	d111 := v.Buf[v.idx(i1, j1, k1)]

	d00 := d000 + (d100-d000)*tx
	d10 := d010 + (d110-d010)*tx
	d01 := d001 + (d101-d001)*tx
	d11 := d011 + (d111-d011)*tx

	d0 := d00 + (d10-d00)*ty
	d1 := d01 + (d11-d01)*ty

	return d0 + (d1-d0)*tz
}

// SampleWorld samples the field at a world-space position.
func (v *Volume) SampleWorld(p Vec3) Real {
	return v.Sample(v.WorldToVoxel(p))
}

// Set writes one sample. Out-of-range indices are a silent no-op so brush
// loops can iterate a cube without per-voxel bounds checks at the call site.
func (v *Volume) Set(i, j, k int, d Real) {
	if i < 0 || j < 0 || k < 0 || i >= v.Nx || j >= v.Ny || k >= v.Nz {
		return
	}
	v.Buf[v.idx(i, j, k)] = d
}

// AddTo adds d to one sample, with the same silent clipping as Set.
func (v *Volume) AddTo(i, j, k int, d Real) {
	if i < 0 || j < 0 || k < 0 || i >= v.Nx || j >= v.Ny || k >= v.Nz {
		return
	}
	v.Buf[v.idx(i, j, k)] += d
}

// gradient estimates the field gradient at a world position via central
// differences, half a voxel out on each axis.
func (v *Volume) gradient(p Vec3) Vec3 {
	ex := normalEpsVoxels * v.VoxelSize.X
	ey := normalEpsVoxels * v.VoxelSize.Y
	ez := normalEpsVoxels * v.VoxelSize.Z
	return Vec3{
		(v.SampleWorld(Vec3{p.X + ex, p.Y, p.Z}) - v.SampleWorld(Vec3{p.X - ex, p.Y, p.Z})) / (2 * ex),
		(v.SampleWorld(Vec3{p.X, p.Y + ey, p.Z}) - v.SampleWorld(Vec3{p.X, p.Y - ey, p.Z})) / (2 * ey),
		(v.SampleWorld(Vec3{p.X, p.Y, p.Z + ez}) - v.SampleWorld(Vec3{p.X, p.Y, p.Z - ez})) / (2 * ez),
	}
}
