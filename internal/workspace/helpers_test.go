package workspace_test

import (
	"image"
	"image/color"

	"github.com/KirkDiggler/monster-maker/internal/sprite"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

// solid builds an opaque w×h sprite in one colour.
func solid(w, h int, c color.NRGBA) *sprite.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	out, err := sprite.FromImage(img)
	if err != nil {
		panic(err)
	}
	return out
}

// redBlue is a 2×1 sprite, red on the left and blue on the right.
func redBlue() *sprite.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, blue)
	out, err := sprite.FromImage(img)
	if err != nil {
		panic(err)
	}
	return out
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

type countingRedrawer struct {
	requests int
}

func (c *countingRedrawer) RequestRedraw() {
	c.requests++
}
