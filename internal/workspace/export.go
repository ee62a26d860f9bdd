package workspace

import (
	"image"
	"math"

	"github.com/KirkDiggler/monster-maker/internal/errors"
)

// Export paints parts at native pixel scale into an image sized to their
// tight bounding box, with the box's minimum corner at the origin. The
// transform order matches Render; no grid and no selection are drawn.
func (r *Renderer) Export(parts []*PlacedPart) (*image.RGBA, error) {
	box, ok := BoundingBox(parts)
	if !ok {
		return nil, errors.FailedPrecondition("no parts to export")
	}

	native := Rect{
		MinX: box.MinX / GridUnit, MinY: box.MinY / GridUnit,
		MaxX: box.MaxX / GridUnit, MaxY: box.MaxY / GridUnit,
	}
	w := int(math.Ceil(native.Dx()))
	h := int(math.Ceil(native.Dy()))
	out := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))

	for _, p := range parts {
		src, ok := r.cache.Get(p.Image)
		if !ok {
			continue
		}
		drawPart(out, src, p, 1.0/GridUnit, native.MinX, native.MinY)
	}
	return out, nil
}
