package workspace

import (
	"strconv"

	"github.com/KirkDiggler/monster-maker/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-maker/internal/sprite"
)

// Direction is a z-order move
type Direction string

// Reorder directions. Front is the highest index.
const (
	Front Direction = "front"
	Back  Direction = "back"
	Up    Direction = "up"
	Down  Direction = "down"
)

// noSelection is the selection id when nothing is selected
const noSelection int64 = -1

// Layer is one row of the layer list
type Layer struct {
	Index    int
	PartID   int64
	Label    string
	Selected bool
}

// Store is the ordered list of placed parts. Index 0 is painted first.
// Selection is held by part id and is cleared, never left dangling, when the
// selected part goes away.
type Store struct {
	parts    []*PlacedPart
	selected int64
	policy   EligibilityPolicy
	ids      idgen.Sequence
	onChange []func([]*PlacedPart)
}

// NewStore creates an empty store that admits parts through policy and
// numbers them from ids.
func NewStore(policy EligibilityPolicy, ids idgen.Sequence) *Store {
	return &Store{
		selected: noSelection,
		policy:   policy,
		ids:      ids,
	}
}

// OnChange registers fn to run after every insert, remove or clear. The
// catalog hooks in here to recompute availability.
func (s *Store) OnChange(fn func([]*PlacedPart)) {
	s.onChange = append(s.onChange, fn)
}

func (s *Store) changed() {
	for _, fn := range s.onChange {
		fn(s.parts)
	}
}

// Len returns the number of placed parts
func (s *Store) Len() int {
	return len(s.parts)
}

// Parts returns the parts back to front. The slice is a copy; the parts are not.
func (s *Store) Parts() []*PlacedPart {
	out := make([]*PlacedPart, len(s.parts))
	copy(out, s.parts)
	return out
}

// At returns the part at index, or nil when out of range.
func (s *Store) At(index int) *PlacedPart {
	if index < 0 || index >= len(s.parts) {
		return nil
	}
	return s.parts[index]
}

// IndexOf returns the index of the part with id, or -1.
func (s *Store) IndexOf(id int64) int {
	for i, p := range s.parts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Insert places a new part at the snapped position on top of the stack and
// selects it. It is a no-op returning false when the policy refuses.
func (s *Store) Insert(img *sprite.Image, partName string, x, y int, source string) (*PlacedPart, bool) {
	if img == nil || !s.policy.CanAdd(partName, source, s.parts) {
		return nil, false
	}

	p := newPlacedPart(s.ids.Next(), img, partName, x, y, source)
	s.parts = append(s.parts, p)
	s.selected = p.ID
	s.changed()

	return p, true
}

// Remove deletes the part at index. Out of range indexes are ignored.
func (s *Store) Remove(index int) bool {
	p := s.At(index)
	if p == nil {
		return false
	}

	s.parts = append(s.parts[:index], s.parts[index+1:]...)
	if p.ID == s.selected {
		s.selected = noSelection
	}
	s.changed()

	return true
}

// Clear empties the store and the selection.
func (s *Store) Clear() {
	s.parts = nil
	s.selected = noSelection
	s.changed()
}

// Reorder moves the part at index in z-order. Selection stays on the same
// part because it is tracked by id.
func (s *Store) Reorder(index int, dir Direction) bool {
	p := s.At(index)
	if p == nil {
		return false
	}
	last := len(s.parts) - 1

	switch dir {
	case Up:
		if index == last {
			return false
		}
		s.parts[index], s.parts[index+1] = s.parts[index+1], s.parts[index]
	case Down:
		if index == 0 {
			return false
		}
		s.parts[index], s.parts[index-1] = s.parts[index-1], s.parts[index]
	case Front:
		if index == last {
			return false
		}
		copy(s.parts[index:], s.parts[index+1:])
		s.parts[last] = p
	case Back:
		if index == 0 {
			return false
		}
		copy(s.parts[1:index+1], s.parts[:index])
		s.parts[0] = p
	default:
		return false
	}
	return true
}

// Select selects the part at index.
func (s *Store) Select(index int) bool {
	p := s.At(index)
	if p == nil {
		return false
	}
	s.selected = p.ID
	return true
}

// Deselect clears the selection.
func (s *Store) Deselect() {
	s.selected = noSelection
}

// Selected returns the selected part and its index, or nil and -1.
func (s *Store) Selected() (*PlacedPart, int) {
	if s.selected == noSelection {
		return nil, -1
	}
	i := s.IndexOf(s.selected)
	if i < 0 {
		return nil, -1
	}
	return s.parts[i], i
}

// HitTest returns the index of the front-most part whose box contains
// (x, y), or -1.
func (s *Store) HitTest(x, y float64) int {
	for i := len(s.parts) - 1; i >= 0; i-- {
		if s.parts[i].Bounds().Contains(x, y) {
			return i
		}
	}
	return -1
}

// Layers lists the parts front-most first, numbered from 1.
func (s *Store) Layers() []Layer {
	layers := make([]Layer, 0, len(s.parts))
	for i := len(s.parts) - 1; i >= 0; i-- {
		p := s.parts[i]
		layers = append(layers, Layer{
			Index:    i,
			PartID:   p.ID,
			Label:    strconv.Itoa(len(layers)+1) + ". " + p.PartName,
			Selected: p.ID == s.selected,
		})
	}
	return layers
}
