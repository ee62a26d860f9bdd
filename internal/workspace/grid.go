// Package workspace is the compositing core of the editor: the layered part
// store, the transform engine, the selection/drag state machine and the
// deterministic renderer and exporter.
//
// Coordinates are workspace units. The canvas is CanvasSize units square and
// every placement is quantised to GridUnit, so one native sprite pixel spans
// GridUnit×GridUnit units (64×64 tiles at 10× zoom).
//
// Nothing in this package is safe for concurrent use except ImageCache. A
// Session is meant to be driven by one logical thread of input events.
package workspace

import "math"

const (
	// GridUnit is the placement quantum in workspace units
	GridUnit = 10

	// CanvasSize is the edge length of the square workspace
	CanvasSize = 640

	// NativeTile is the canvas size in native sprite pixels
	NativeTile = CanvasSize / GridUnit
)

// Snap floors v to a multiple of GridUnit. Negative values floor away from
// zero so the grid stays uniform left of the origin.
func Snap(v int) int {
	return floorDiv(v, GridUnit) * GridUnit
}

// SnapF floors a fractional coordinate to a multiple of GridUnit.
func SnapF(v float64) int {
	return int(math.Floor(v/GridUnit)) * GridUnit
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Rect is an axis-aligned box given by its min and max corners.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Dx returns the width of the box
func (r Rect) Dx() float64 { return r.MaxX - r.MinX }

// Dy returns the height of the box
func (r Rect) Dy() float64 { return r.MaxY - r.MinY }

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Union returns the smallest box covering r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// BoundingBox returns the union of the parts' unrotated boxes. ok is false
// for an empty slice, where no box exists.
func BoundingBox(parts []*PlacedPart) (box Rect, ok bool) {
	for i, p := range parts {
		if i == 0 {
			box = p.Bounds()
			continue
		}
		box = box.Union(p.Bounds())
	}
	return box, len(parts) > 0
}
