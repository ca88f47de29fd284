package sdfvol

// Trace and sculpt tuning constants.
const (
	MaxSteps = 512 // per-ray iteration budget; exceeding it is a miss

	// Tolerances in smallest-voxel units, resolved per volume at creation.
	hitEpsVoxels    = 0.05 // surface tolerance
	minStepVoxels   = 0.10 // forward-progress floor for the march
	normalEpsVoxels = 0.5  // central-difference half-step for gradients

	// Minimum sculpt region size (voxels) before z-slabs are split across workers.
	sculptParallelMin = 4096

	// |direction component| below this is treated as parallel to the slab.
	parEps = 1e-9
)

// Shading constants (directional + ambient, fixed light).
const (
	ambient = 0.18
)
