package sdfvol

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG saves an RGBA pixel buffer, as produced by Render, as a PNG file.
func WritePNG(path string, pix []byte, w, h int) error {
	if len(pix) != w*h*4 {
		return fmt.Errorf("write png: buffer is %d bytes, want %d for %dx%d", len(pix), w*h*4, w, h)
	}
	img := &image.NRGBA{
		Pix:    pix,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
