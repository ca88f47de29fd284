package sdfvol

var (
	Debug   = false // set to true for verbose debug output
	Workers = 0     // worker count for parallel passes; 0 = runtime.NumCPU()

	lightDir  = Vec3{0.45, 0.80, 0.35}.Norm()
	baseColor = Vec3{0.78, 0.80, 0.85}
	// Background RGBA emitted for rays that miss the volume.
	Background = [4]uint8{18, 18, 24, 255}
)
