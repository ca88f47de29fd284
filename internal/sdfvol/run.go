package sdfvol

import (
	"math"
	"time"
)

// Run drives one offline session from a JSON config: build or load the
// volume, replay scripted strokes, render (PNG or orbit GIF), and
// optionally persist the edited volume. Strokes and the render never
// overlap: each stroke is applied fully before the next, and rendering only
// starts once the field has settled.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	vol, err := cfg.Volume.Build()
	if err != nil {
		return err
	}

	var prev Vec3
	hasPrev := false
	for i := range cfg.Strokes {
		sp, err := cfg.Strokes[i].Params(prev, hasPrev)
		if err != nil {
			return err
		}
		region := Sculpt(vol, sp)
		DebugLog("Stroke #%d (%s): region empty=%v", i, sp.Mode, region.Empty())
		prev, hasPrev = sp.Position, true
	}

	cam := LookAt(cfg.Camera.Eye, cfg.Camera.Target, cfg.Camera.Up)
	fov := cfg.Render.FOVDeg * math.Pi / 180.0
	params := NewRaymarchParams(vol, cam, cfg.Render.Width, cfg.Render.Height, fov, cfg.Render.IsoValue)

	start := time.Now()
	if cfg.Render.OrbitFrames > 0 {
		if err := SaveOrbitGIF(vol, cfg.Render.Output, params, cfg.Render.OrbitFrames, cfg.Render.GIFDelay); err != nil {
			return err
		}
	} else {
		pix, err := Render(vol, params)
		if err != nil {
			return err
		}
		if err := WritePNG(cfg.Render.Output, pix, params.Width, params.Height); err != nil {
			return err
		}
	}
	DebugLog("Rendered %s in %s", cfg.Render.Output, time.Since(start))

	if cfg.SaveVolume != "" {
		if err := SaveVolume(vol, cfg.SaveVolume); err != nil {
			return err
		}
	}
	return nil
}
