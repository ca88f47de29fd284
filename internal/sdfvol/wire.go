package sdfvol

import (
	"structs"

	"honnef.co/go/safeish"
)

// Kernel-boundary parameter layouts. A CPU caller and a parallel compute
// kernel consume these byte-for-byte, so field order, scalar widths and the
// explicit pad fields must not change. Internal code uses the structured
// types in params.go; packing happens only here, at the submission boundary.

// VolumeUniform mirrors the volume header: 3x u32 dims, 3x f32 voxel size,
// 3x f32 origin, one pad float (40 bytes).
type VolumeUniform struct {
	_ structs.HostLayout

	DimX, DimY, DimZ                   uint32
	VoxelSizeX, VoxelSizeY, VoxelSizeZ float32
	OriginX, OriginY, OriginZ          float32
	Pad0                               float32
}

// Uniform packs the grid's spatial metadata for kernel submission.
func (v *Volume) Uniform() VolumeUniform {
	return VolumeUniform{
		DimX: uint32(v.Nx), DimY: uint32(v.Ny), DimZ: uint32(v.Nz),
		VoxelSizeX: v.VoxelSize.X, VoxelSizeY: v.VoxelSize.Y, VoxelSizeZ: v.VoxelSize.Z,
		OriginX: v.Origin.X, OriginY: v.Origin.Y, OriginZ: v.Origin.Z,
	}
}

func (u *VolumeUniform) Bytes() []byte { return safeish.AsBytes(u) }

// RaymarchUniform mirrors the render-kernel parameter block (108 bytes).
type RaymarchUniform struct {
	_ structs.HostLayout

	OutputWidth, OutputHeight uint32

	CameraPositionX, CameraPositionY, CameraPositionZ float32
	CameraForwardX, CameraForwardY, CameraForwardZ    float32
	CameraRightX, CameraRightY, CameraRightZ          float32
	CameraUpX, CameraUpY, CameraUpZ                   float32

	FOV float32

	VolumeMinX, VolumeMinY, VolumeMinZ float32
	VolumeMaxX, VolumeMaxY, VolumeMaxZ float32
	VolumeDimX, VolumeDimY, VolumeDimZ uint32

	Time     float32
	IsoValue float32
	Pad0     float32
}

// Uniform flattens the render request to the wire layout.
func (p RaymarchParams) Uniform() RaymarchUniform {
	return RaymarchUniform{
		OutputWidth:  uint32(p.Width),
		OutputHeight: uint32(p.Height),

		CameraPositionX: p.Camera.Position.X, CameraPositionY: p.Camera.Position.Y, CameraPositionZ: p.Camera.Position.Z,
		CameraForwardX: p.Camera.Forward.X, CameraForwardY: p.Camera.Forward.Y, CameraForwardZ: p.Camera.Forward.Z,
		CameraRightX: p.Camera.Right.X, CameraRightY: p.Camera.Right.Y, CameraRightZ: p.Camera.Right.Z,
		CameraUpX: p.Camera.Up.X, CameraUpY: p.Camera.Up.Y, CameraUpZ: p.Camera.Up.Z,

		FOV: p.FOV,

		VolumeMinX: p.VolumeMin.X, VolumeMinY: p.VolumeMin.Y, VolumeMinZ: p.VolumeMin.Z,
		VolumeMaxX: p.VolumeMax.X, VolumeMaxY: p.VolumeMax.Y, VolumeMaxZ: p.VolumeMax.Z,
		VolumeDimX: uint32(p.VolumeDim[0]), VolumeDimY: uint32(p.VolumeDim[1]), VolumeDimZ: uint32(p.VolumeDim[2]),

		Time:     p.Time,
		IsoValue: p.IsoValue,
	}
}

func (u *RaymarchUniform) Bytes() []byte { return safeish.AsBytes(u) }

// SculptUniform mirrors the sculpt-kernel parameter block (40 bytes).
// Mode is 0 = add, 1 = remove; HasPreviousPosition is 0/1.
type SculptUniform struct {
	_ structs.HostLayout

	ToolPositionX, ToolPositionY, ToolPositionZ             float32
	PreviousPositionX, PreviousPositionY, PreviousPositionZ float32

	Radius              float32
	SmoothFactor        float32
	Mode                int32
	HasPreviousPosition int32
}

// Uniform flattens the stroke; the mode enum and the optional previous
// position collapse to their integer wire encodings here and nowhere else.
func (p SculptParams) Uniform() SculptUniform {
	u := SculptUniform{
		ToolPositionX: p.Position.X, ToolPositionY: p.Position.Y, ToolPositionZ: p.Position.Z,
		PreviousPositionX: p.Previous.X, PreviousPositionY: p.Previous.Y, PreviousPositionZ: p.Previous.Z,
		Radius:       p.Radius,
		SmoothFactor: p.SmoothFactor,
	}
	if p.Mode == ModeRemove {
		u.Mode = 1
	}
	if p.HasPrevious {
		u.HasPreviousPosition = 1
	}
	return u
}

// Params lifts a wire-encoded stroke (as produced by an input layer) back
// into the structured form.
func (u SculptUniform) Params() SculptParams {
	p := SculptParams{
		Position:     Vec3{u.ToolPositionX, u.ToolPositionY, u.ToolPositionZ},
		Previous:     Vec3{u.PreviousPositionX, u.PreviousPositionY, u.PreviousPositionZ},
		HasPrevious:  u.HasPreviousPosition != 0,
		Radius:       u.Radius,
		SmoothFactor: u.SmoothFactor,
		Mode:         ModeAdd,
	}
	if u.Mode == 1 {
		p.Mode = ModeRemove
	}
	return p
}

func (u *SculptUniform) Bytes() []byte { return safeish.AsBytes(u) }
