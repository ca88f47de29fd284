package main

import (
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"sdfvol/internal/sdfvol"
)

// Interactive SDF sculpting: left mouse adds material, right mouse carves,
// middle-drag orbits, wheel zooms, [ and ] resize the brush.

const (
	viewW = 320
	viewH = 240
	fov   = 60 * math.Pi / 180
	res   = 96 // voxels per axis
)

type editor struct {
	vol *sdfvol.Volume
	img *ebiten.Image

	yaw, pitch, dist float32

	lastX, lastY int
	orbiting     bool

	radius, smooth float32
	prev           sdfvol.Vec3
	hasPrev        bool
}

func (e *editor) params() sdfvol.RaymarchParams {
	minB, maxB := e.vol.Bounds()
	center := minB.Add(maxB).Mul(0.5)
	cy, sy := math.Cos(float64(e.yaw)), math.Sin(float64(e.yaw))
	cp, sp := math.Cos(float64(e.pitch)), math.Sin(float64(e.pitch))
	eye := center.Add(sdfvol.Vec3{
		e.dist * float32(cp*cy),
		e.dist * float32(sp),
		e.dist * float32(cp*sy),
	})
	cam := sdfvol.LookAt(eye, center, sdfvol.Vec3{0, 1, 0})
	return sdfvol.NewRaymarchParams(e.vol, cam, viewW, viewH, fov, 0)
}

func (e *editor) Update() error {
	_, wy := ebiten.Wheel()
	if wy != 0 {
		e.dist *= 1 - 0.05*float32(wy)
		if e.dist < 0.5 {
			e.dist = 0.5
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyBracketLeft) {
		e.radius *= 0.97
	}
	if ebiten.IsKeyPressed(ebiten.KeyBracketRight) {
		e.radius *= 1.03
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		if e.orbiting {
			e.yaw += float32(x-e.lastX) * 0.01
			e.pitch += float32(y-e.lastY) * 0.01
			const lim = 1.4
			if e.pitch > lim {
				e.pitch = lim
			}
			if e.pitch < -lim {
				e.pitch = -lim
			}
		}
		e.orbiting = true
	} else {
		e.orbiting = false
	}
	e.lastX, e.lastY = x, y

	// One sculpt application per frame, then Draw renders the settled field.
	add := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	rem := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if (add || rem) && !e.orbiting && x >= 0 && y >= 0 && x < viewW && y < viewH {
		p := e.params()
		o, d := p.PixelRay(x, y)
		if hit, ok := sdfvol.TraceRay(e.vol, o, d, 0); ok {
			mode := sdfvol.ModeAdd
			if rem {
				mode = sdfvol.ModeRemove
			}
			sdfvol.Sculpt(e.vol, sdfvol.SculptParams{
				Position:     hit.Pos,
				Previous:     e.prev,
				HasPrevious:  e.hasPrev,
				Radius:       e.radius,
				SmoothFactor: e.smooth,
				Mode:         mode,
			})
			e.prev, e.hasPrev = hit.Pos, true
			return nil
		}
	}
	e.hasPrev = false
	return nil
}

func (e *editor) Draw(screen *ebiten.Image) {
	pix, err := sdfvol.Render(e.vol, e.params())
	if err != nil {
		return
	}
	e.img.WritePixels(pix)
	screen.DrawImage(e.img, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("brush %.3f  LMB add / RMB carve / MMB orbit", e.radius))
}

func (e *editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewW, viewH
}

func main() {
	sdfvol.Debug = os.Getenv("DEBUG") != ""

	shape := "combined"
	if len(os.Args) > 1 {
		shape = os.Args[1]
	}
	f, ok := sdfvol.Preset(shape)
	if !ok {
		fmt.Printf("Unknown shape: %s\n", shape)
		os.Exit(1)
	}

	// res^3 voxels spanning [-1,1]^3, like the stock generator volumes.
	vs := float32(2.0 / res)
	vol, err := sdfvol.NewVolume(res, res, res, sdfvol.Vec3{vs, vs, vs}, sdfvol.Vec3{-1, -1, -1}, 1e3)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	sdfvol.FillField(vol, f)

	e := &editor{
		vol:    vol,
		img:    ebiten.NewImage(viewW, viewH),
		dist:   3,
		pitch:  0.4,
		radius: 0.12,
		smooth: 0.5,
	}

	ebiten.SetWindowTitle("sdfedit")
	ebiten.SetWindowSize(viewW*2, viewH*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(e); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
