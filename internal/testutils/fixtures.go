package testutils

import (
	"image"
	"image/color"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/sprite"
)

// Fixture colours
var (
	Red   = color.NRGBA{R: 0xff, A: 0xff}
	Green = color.NRGBA{G: 0xff, A: 0xff}
	Blue  = color.NRGBA{B: 0xff, A: 0xff}
)

// SolidPNG encodes an opaque w×h image in one colour
func SolidPNG(w, h int, c color.NRGBA) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	data, err := sprite.Encode(img)
	if err != nil {
		panic(err)
	}
	return data
}

// TestCreature builds a creature with a 16×16 sprite and one solid part
// image per entry of parts, sized w×h.
func TestCreature(id, name string, parts map[string][2]int) *entities.Creature {
	c := &entities.Creature{
		ID:     id,
		Name:   name,
		Sprite: SolidPNG(16, 16, Blue),
		Parts:  make(map[string][]byte, len(parts)),
	}
	for part, size := range parts {
		c.Parts[part] = SolidPNG(size[0], size[1], Red)
	}
	return c
}
