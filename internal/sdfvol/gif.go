package sdfvol

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
)

// SaveOrbitGIF renders the volume from a camera orbiting the volume center
// and writes one GIF frame per step. The orbit keeps the base camera's
// distance and height; delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveOrbitGIF(vol *Volume, path string, base RaymarchParams, frames, delay int) error {
	if frames <= 0 {
		return fmt.Errorf("orbit gif: frames must be positive, got %d", frames)
	}

	minB, maxB := vol.Bounds()
	center := minB.Add(maxB).Mul(0.5)
	off := base.Camera.Position.Sub(center)
	radius := Vec3{off.X, 0, off.Z}.Len()
	if radius == 0 {
		radius = maxB.Sub(minB).Len() // camera on the orbit axis: push it out
	}
	height := off.Y
	phase := math.Atan2(float64(off.Z), float64(off.X))

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}

	step := 1
	if frames >= 100 {
		step = frames / 100
	}

	for f := 0; f < frames; f++ {
		if f%step == 0 {
			fmt.Printf("[GIF] %.2f%%\n", float64(f+1)*100/float64(frames))
		}

		ang := phase + 2*math.Pi*float64(f)/float64(frames)
		eye := Vec3{
			center.X + radius*Real(math.Cos(ang)),
			center.Y + height,
			center.Z + radius*Real(math.Sin(ang)),
		}
		p := base
		p.Camera = LookAt(eye, center, Vec3{0, 1, 0})

		pix, err := Render(vol, p)
		if err != nil {
			return err
		}

		rgba := &image.NRGBA{Pix: pix, Stride: p.Width * 4, Rect: image.Rect(0, 0, p.Width, p.Height)}
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return gif.EncodeAll(fh, out)
}
