package sdfvol

import (
	"fmt"
	"os"

	"honnef.co/go/safeish"
)

// .volume files are a bare little-endian float32 sample stream in the
// grid's flat order; there is no header, so the loader must be told the
// dimensions. The format matches what volume generators and the GPU-side
// sample buffer use, so loading is a straight byte copy on little-endian
// hosts (the only ones the toolchain here targets).

// SaveVolume writes the sample buffer to path.
func SaveVolume(v *Volume, path string) error {
	if err := os.WriteFile(path, safeish.SliceCast[[]byte](v.Buf), 0644); err != nil {
		return fmt.Errorf("save volume: %w", err)
	}
	DebugLog("Saved volume %s (%d samples)", path, len(v.Buf))
	return nil
}

// LoadVolume reads a sample stream of exactly nx*ny*nz float32 values and
// wraps it in a grid with the given spatial metadata.
func LoadVolume(path string, nx, ny, nz int, voxelSize, origin Vec3) (*Volume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load volume: %w", err)
	}
	v, err := NewVolume(nx, ny, nz, voxelSize, origin, 0)
	if err != nil {
		return nil, err
	}
	want := len(v.Buf) * 4
	if len(data) != want {
		return nil, fmt.Errorf("load volume: %s holds %d bytes, want %d for %dx%dx%d",
			path, len(data), want, nx, ny, nz)
	}
	copy(v.Buf, safeish.SliceCast[[]Real](data))
	return v, nil
}
