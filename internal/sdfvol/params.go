package sdfvol

import "github.com/chewxy/math32"

// Camera is a right-handed orthonormal basis plus a position. The separate
// forward/right/up convention is the interface contract; LookAt builds a
// drift-free frame internally.
type Camera struct {
	Position Vec3
	Forward  Vec3
	Right    Vec3
	Up       Vec3
}

// LookAt builds a camera at eye looking at target, re-orthonormalizing
// against worldUp so accumulated caller error cannot skew the frame.
func LookAt(eye, target, worldUp Vec3) Camera {
	f := target.Sub(eye).Norm()
	r := f.Cross(worldUp).Norm()
	if r.Len() == 0 {
		// forward is parallel to worldUp; pick an arbitrary perpendicular
		r = f.Cross(Vec3{1, 0, 0}).Norm()
		if r.Len() == 0 {
			r = f.Cross(Vec3{0, 0, 1}).Norm()
		}
	}
	u := r.Cross(f)
	return Camera{Position: eye, Forward: f, Right: r, Up: u}
}

// RaymarchParams describes one render request. FOV is the vertical field of
// view in radians. VolumeMin/Max/Dim must describe the volume actually
// traced; Render fails fast when the dimensions disagree.
type RaymarchParams struct {
	Width, Height int
	Camera        Camera
	FOV           Real

	VolumeMin Vec3
	VolumeMax Vec3
	VolumeDim [3]int

	Time     Real // for time-varying shading; unused by the default shader
	IsoValue Real // sample value treated as the surface
}

// NewRaymarchParams derives the volume bounds and dimensions from vol itself
// so they cannot drift out of sync with the grid being traced.
func NewRaymarchParams(vol *Volume, cam Camera, width, height int, fov, iso Real) RaymarchParams {
	minB, maxB := vol.Bounds()
	return RaymarchParams{
		Width:     width,
		Height:    height,
		Camera:    cam,
		FOV:       fov,
		VolumeMin: minB,
		VolumeMax: maxB,
		VolumeDim: [3]int{vol.Nx, vol.Ny, vol.Nz},
		IsoValue:  iso,
	}
}

// PixelRay returns the world-space ray through pixel (px, py), using the
// same NDC convention as Render. Used for cursor picking in editors.
func (p RaymarchParams) PixelRay(px, py int) (origin, dir Vec3) {
	tanHalf := math32.Tan(p.FOV * 0.5)
	aspect := Real(p.Width) / Real(p.Height)
	ndcX := (2*(Real(px)+0.5)/Real(p.Width) - 1) * tanHalf * aspect
	ndcY := (1 - 2*(Real(py)+0.5)/Real(p.Height)) * tanHalf
	dir = p.Camera.Forward.
		Add(p.Camera.Right.Mul(ndcX)).
		Add(p.Camera.Up.Mul(ndcY)).
		Norm()
	return p.Camera.Position, dir
}

// SculptMode selects between depositing and carving material.
type SculptMode uint8

const (
	ModeAdd SculptMode = iota
	ModeRemove
)

func (m SculptMode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeRemove:
		return "remove"
	}
	return "unknown"
}

// SculptParams describes one tool application. When HasPrevious is true the
// stroke sweeps a capsule from Previous to Position, so fast tool motion
// between input events leaves no gaps.
type SculptParams struct {
	Position     Vec3
	Previous     Vec3
	HasPrevious  bool
	Radius       Real // world-space influence radius, > 0
	SmoothFactor Real // blend strength in [0,1]
	Mode         SculptMode
}
