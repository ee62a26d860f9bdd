package workspace

import (
	"math"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/monster-maker/internal/sprite"
)

// Scale limits and step for the transform engine
const (
	MinScale     = 0.25
	MaxScale     = 2.0
	DefaultScale = 1.0
)

// Axis selects which flip flag to toggle
type Axis int

// Flip axes
const (
	Horizontal Axis = iota
	Vertical
)

// PlacedPart is one part instance on the workspace. Width and Height are
// always derived from the base size and the scale.
type PlacedPart struct {
	ID             int64
	PartName       string
	SourceCreature string
	Image          *sprite.Image

	X, Y int

	BaseWidth  int
	BaseHeight int
	Scale      float64

	Rotation int
	FlipH    bool
	FlipV    bool
}

// newPlacedPart sizes the part from the image's native pixels and snaps the
// requested position.
func newPlacedPart(id int64, img *sprite.Image, partName string, x, y int, source string) *PlacedPart {
	return &PlacedPart{
		ID:             id,
		PartName:       partName,
		SourceCreature: source,
		Image:          img,
		X:              Snap(x),
		Y:              Snap(y),
		BaseWidth:      img.Width * GridUnit,
		BaseHeight:     img.Height * GridUnit,
		Scale:          DefaultScale,
	}
}

// GetID returns the part ID as a string
func (p *PlacedPart) GetID() string {
	return strconv.FormatInt(p.ID, 10)
}

// GetType returns the entity type for rpg-toolkit
func (p *PlacedPart) GetType() string {
	return "placed_part"
}

var _ core.Entity = (*PlacedPart)(nil)

// Width is the scaled width in workspace units
func (p *PlacedPart) Width() float64 {
	return float64(p.BaseWidth) * p.Scale
}

// Height is the scaled height in workspace units
func (p *PlacedPart) Height() float64 {
	return float64(p.BaseHeight) * p.Scale
}

// Bounds is the part's plain axis-aligned box, ignoring rotation and flips.
func (p *PlacedPart) Bounds() Rect {
	x, y := float64(p.X), float64(p.Y)
	return Rect{MinX: x, MinY: y, MaxX: x + p.Width(), MaxY: y + p.Height()}
}

// SetScale clamps factor into [MinScale, MaxScale].
func (p *PlacedPart) SetScale(factor float64) {
	if math.IsNaN(factor) {
		return
	}
	p.Scale = math.Max(MinScale, math.Min(MaxScale, factor))
}

// AdjustScale adds delta to the current scale, clamped.
func (p *PlacedPart) AdjustScale(delta float64) {
	p.SetScale(p.Scale + delta)
}

// ResetScale restores the native size.
func (p *PlacedPart) ResetScale() {
	p.SetScale(DefaultScale)
}

// Rotate turns the part by delta degrees; the result stays in [0, 360).
func (p *PlacedPart) Rotate(delta int) {
	r := (p.Rotation + delta) % 360
	if r < 0 {
		r += 360
	}
	p.Rotation = r
}

// Flip toggles mirroring along axis.
func (p *PlacedPart) Flip(axis Axis) {
	switch axis {
	case Horizontal:
		p.FlipH = !p.FlipH
	case Vertical:
		p.FlipV = !p.FlipV
	}
}

// MoveTo places the top-left corner at the snapped position.
func (p *PlacedPart) MoveTo(x, y int) {
	p.X = Snap(x)
	p.Y = Snap(y)
}

// CenterOn moves the part so it sits centred under a pointer, then snaps.
// It reports whether the snapped position changed.
func (p *PlacedPart) CenterOn(px, py float64) bool {
	nx := SnapF(px - p.Width()/2)
	ny := SnapF(py - p.Height()/2)
	if nx == p.X && ny == p.Y {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}

// Nudge moves the part by whole grid units and keeps its box on the canvas.
// Parts wider or taller than the canvas pin to the origin on that axis.
func (p *PlacedPart) Nudge(dx, dy int) {
	if dx != 0 {
		p.X = clampGrid(p.X+dx*GridUnit, CanvasSize-p.Width())
	}
	if dy != 0 {
		p.Y = clampGrid(p.Y+dy*GridUnit, CanvasSize-p.Height())
	}
}

// clampGrid clamps v into [0, upper], rounding upper down to the grid so the
// result stays aligned.
func clampGrid(v int, upper float64) int {
	hi := max(SnapF(upper), 0)
	return max(0, min(v, hi))
}
