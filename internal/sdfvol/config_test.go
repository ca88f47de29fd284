package sdfvol

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
		"volume": {"dims": [32, 32, 32], "voxelSize": {"X": 0.0625, "Y": 0.0625, "Z": 0.0625}, "origin": {"X": -1, "Y": -1, "Z": -1}, "shape": "sphere"},
		"camera": {"eye": {"X": 0, "Y": 0, "Z": -3}, "target": {"X": 0, "Y": 0, "Z": 0}},
		"render": {"width": 64, "height": 48, "fovDeg": 60, "output": "out.png"},
		"strokes": [
			{"position": {"X": 0.5, "Y": 0, "Z": 0}, "radius": 0.2, "smooth": 0.5, "mode": "add"},
			{"position": {"X": 0.6, "Y": 0, "Z": 0}, "radius": 0.2, "smooth": 0.5, "mode": "remove"}
		]
	}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Camera.Up != (Vec3{0, 1, 0}) {
		t.Fatalf("default up: %+v", cfg.Camera.Up)
	}
	if cfg.Render.GIFDelay != 5 {
		t.Fatalf("default gif delay: %d", cfg.Render.GIFDelay)
	}
	if len(cfg.Strokes) != 2 {
		t.Fatalf("strokes: %d", len(cfg.Strokes))
	}

	vol, err := cfg.Volume.Build()
	if err != nil {
		t.Fatal(err)
	}
	if vol.Nx != 32 || vol.Ny != 32 || vol.Nz != 32 {
		t.Fatalf("built dims: %d %d %d", vol.Nx, vol.Ny, vol.Nz)
	}
	// seeded with a sphere: center negative, corner positive
	if vol.Buf[vol.idx(16, 16, 16)] >= 0 {
		t.Fatal("shape seed missing: center not inside")
	}
	if vol.Buf[vol.idx(0, 0, 0)] <= 0 {
		t.Fatal("shape seed missing: corner not outside")
	}
}

func TestStrokeCfgParams(t *testing.T) {
	s := StrokeCfg{Position: Vec3{1, 2, 3}, Radius: 0.3, Smooth: 0.6, Mode: "remove"}
	p, err := s.Params(Vec3{0, 0, 0}, true)
	if err != nil {
		t.Fatal(err)
	}
	if p.Mode != ModeRemove || !p.HasPrevious || p.Previous != (Vec3{0, 0, 0}) {
		t.Fatalf("stroke params: %+v", p)
	}

	s2 := StrokeCfg{Position: Vec3{1, 0, 0}, Radius: 0.1, Smooth: 1, Unchain: true}
	p2, err := s2.Params(Vec3{9, 9, 9}, true)
	if err != nil {
		t.Fatal(err)
	}
	if p2.HasPrevious {
		t.Fatal("unchained stroke kept its previous position")
	}
	if p2.Mode != ModeAdd {
		t.Fatal("empty mode should default to add")
	}

	if _, err := (&StrokeCfg{Mode: "smudge"}).Params(Vec3{}, false); err == nil {
		t.Fatal("unknown mode should error")
	}
}

func TestVolumeCfgUnknownShape(t *testing.T) {
	c := VolumeCfg{Dims: [3]int{8, 8, 8}, VoxelSize: Vec3{0.25, 0.25, 0.25}, Shape: "teapot"}
	if _, err := c.Build(); err == nil {
		t.Fatal("unknown shape should error")
	}
}
