package sdfvol

import (
	"encoding/json"
	"fmt"
	"os"
)

// VolumeCfg describes how to obtain the session's volume: load a .volume
// file, seed an analytic preset, or start from a uniform fill.
type VolumeCfg struct {
	Dims      [3]int `json:"dims"`
	VoxelSize Vec3   `json:"voxelSize"`
	Origin    Vec3   `json:"origin"`
	Fill      Real   `json:"fill,omitempty"`
	Shape     string `json:"shape,omitempty"` // sphere|box|torus|cylinder|capsule|octahedron|combined|bunny
	File      string `json:"file,omitempty"`  // raw float32 .volume input
}

type CameraCfg struct {
	Eye    Vec3 `json:"eye"`
	Target Vec3 `json:"target"`
	Up     Vec3 `json:"up"`
}

type RenderCfg struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	FOVDeg      Real   `json:"fovDeg"`
	IsoValue    Real   `json:"isoValue,omitempty"`
	Output      string `json:"output"`
	OrbitFrames int    `json:"orbitFrames,omitempty"` // > 0 renders an orbit GIF instead of a single PNG
	GIFDelay    int    `json:"gifDelay,omitempty"`
}

// StrokeCfg is one scripted tool application. Consecutive strokes chain:
// each one's previous position is the stroke before it, matching how an
// input layer feeds live pointer events.
type StrokeCfg struct {
	Position Vec3   `json:"position"`
	Radius   Real   `json:"radius"`
	Smooth   Real   `json:"smooth"`
	Mode     string `json:"mode"` // "add" or "remove"
	Unchain  bool   `json:"unchain,omitempty"`
}

type Config struct {
	Volume     VolumeCfg   `json:"volume"`
	Camera     CameraCfg   `json:"camera"`
	Render     RenderCfg   `json:"render"`
	Strokes    []StrokeCfg `json:"strokes,omitempty"`
	SaveVolume string      `json:"saveVolume,omitempty"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Render.GIFDelay == 0 {
		cfg.Render.GIFDelay = 5
	}
	if cfg.Camera.Up == (Vec3{}) {
		cfg.Camera.Up = Vec3{0, 1, 0}
	}
	return &cfg, nil
}

// Build constructs the volume the config describes.
func (c *VolumeCfg) Build() (*Volume, error) {
	nx, ny, nz := c.Dims[0], c.Dims[1], c.Dims[2]
	if c.File != "" {
		return LoadVolume(c.File, nx, ny, nz, c.VoxelSize, c.Origin)
	}
	fill := c.Fill
	if fill == 0 && c.Shape == "" {
		fill = 1e3 // empty space: a large positive "far outside" distance
	}
	vol, err := NewVolume(nx, ny, nz, c.VoxelSize, c.Origin, fill)
	if err != nil {
		return nil, err
	}
	if c.Shape != "" {
		f, ok := Preset(c.Shape)
		if !ok {
			return nil, fmt.Errorf("config: unknown shape %q", c.Shape)
		}
		FillField(vol, f)
	}
	return vol, nil
}

// Params converts a scripted stroke, chained to the previous tool position
// when one exists and the stroke does not opt out.
func (s *StrokeCfg) Params(prev Vec3, hasPrev bool) (SculptParams, error) {
	mode := ModeAdd
	switch s.Mode {
	case "", "add":
	case "remove":
		mode = ModeRemove
	default:
		return SculptParams{}, fmt.Errorf("config: unknown sculpt mode %q", s.Mode)
	}
	return SculptParams{
		Position:     s.Position,
		Previous:     prev,
		HasPrevious:  hasPrev && !s.Unchain,
		Radius:       s.Radius,
		SmoothFactor: s.Smooth,
		Mode:         mode,
	}, nil
}
