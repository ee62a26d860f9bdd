package workspace

import (
	"image"

	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-maker/internal/sprite"
)

// ClickAddPosition is where click-to-add places a part, on both axes
var ClickAddPosition = Snap(CanvasSize/2 - 16)

// ConfirmClearMessage is asked before creatures change under a non-empty workspace
const ConfirmClearMessage = "Changing monsters will clear your workspace. Continue?"

// Confirmer asks the user to approve a destructive action
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(message string) bool

// Confirm implements Confirmer
func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// Options tunes a session. Zero values pick the defaults.
type Options struct {
	Policy       EligibilityPolicy
	PointerScale float64
	IDs          idgen.Sequence
	Cache        *ImageCache
}

// Op is a command applied to the selected part
type Op string

// Commands on the selected part
const (
	OpScale          Op = "scale"
	OpAdjustScale    Op = "adjust_scale"
	OpResetScale     Op = "reset_scale"
	OpRotate         Op = "rotate"
	OpFlipHorizontal Op = "flip_horizontal"
	OpFlipVertical   Op = "flip_vertical"
	OpLayerUp        Op = "layer_up"
	OpLayerDown      Op = "layer_down"
	OpLayerFront     Op = "layer_front"
	OpLayerBack      Op = "layer_back"
	OpRemove         Op = "remove"
)

// Command is one toolbar action. Value carries the factor, delta or degrees.
type Command struct {
	Op    Op
	Value float64
}

// Snapshot is a read-only view of a session for presentation
type Snapshot struct {
	ID       string
	Sources  []string
	State    State
	Policy   string
	Catalog  []CatalogEntry
	Layers   []Layer
	Parts    []PlacedPart
	Selected int
}

// Session is one editing workspace: the store, its catalog, the controller
// and the render pipeline. It owns all editor state; nothing is global.
type Session struct {
	ID string

	sources    []string
	store      *Store
	catalog    *Catalog
	controller *Controller
	renderer   *Renderer
	scheduler  *Scheduler
	cache      *ImageCache
}

// NewSession creates a session over the given creatures' catalog entries.
// The entries must already be cropped so eligibility is evaluated against a
// complete catalog.
func NewSession(id string, sources []string, entries []CatalogEntry, opts Options) *Session {
	if opts.Policy == nil {
		opts.Policy = GlobalCapPolicy{Cap: 2}
	}
	if opts.IDs == nil {
		opts.IDs = idgen.NewMonotonic(nil)
	}
	if opts.Cache == nil {
		opts.Cache = NewImageCache()
	}

	s := &Session{
		ID:      id,
		sources: append([]string(nil), sources...),
		cache:   opts.Cache,
		store:   NewStore(opts.Policy, opts.IDs),
		catalog: NewCatalog(opts.Policy, entries),
	}
	s.renderer = NewRenderer(s.cache)
	s.scheduler = NewScheduler(s.paint)
	s.controller = NewController(s.store, s.scheduler, opts.PointerScale)

	s.store.OnChange(func(parts []*PlacedPart) {
		s.catalog.Refresh(parts)
	})
	s.catalog.Refresh(nil)
	for _, e := range entries {
		s.cache.Prefetch(e.Image)
	}
	s.scheduler.RequestRedraw()

	return s
}

func (s *Session) paint() {
	selectedID := noSelection
	if p, _ := s.store.Selected(); p != nil {
		selectedID = p.ID
	}
	if skipped := s.renderer.Render(s.store.parts, selectedID); skipped > 0 && s.decoding() {
		// pick the part up on the next frame once its decode lands
		s.scheduler.RequestRedraw()
	}
}

// decoding reports whether any placed part's image is still being decoded.
// Parts whose decode failed never paint and do not count.
func (s *Session) decoding() bool {
	for _, p := range s.store.parts {
		if s.cache.Pending(p.Image) {
			return true
		}
	}
	return false
}

// Sources returns the names of the active creatures
func (s *Session) Sources() []string {
	return append([]string(nil), s.sources...)
}

// Store exposes the placed-part store
func (s *Session) Store() *Store {
	return s.store
}

// Catalog exposes the part catalog
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// State returns the controller state
func (s *Session) State() State {
	return s.controller.State()
}

// Handle dispatches an input event.
func (s *Session) Handle(ev InputEvent) bool {
	return s.controller.Handle(ev)
}

// AddPart inserts a catalog part at (x, y). inserted is false when the
// eligibility policy refuses, which is not an error.
func (s *Session) AddPart(partName, source string, x, y int) (*PlacedPart, bool, error) {
	entry, ok := s.catalog.Lookup(partName, source)
	if !ok {
		return nil, false, errors.NotFoundf("part %q of %q is not in the catalog", partName, source)
	}

	s.cache.Prefetch(entry.Image)
	p, inserted := s.store.Insert(entry.Image, partName, x, y, source)
	if inserted {
		s.scheduler.RequestRedraw()
	}
	return p, inserted, nil
}

// AddPartCentered is click-to-add: the part lands near the canvas centre.
func (s *Session) AddPartCentered(partName, source string) (*PlacedPart, bool, error) {
	return s.AddPart(partName, source, ClickAddPosition, ClickAddPosition)
}

// Apply runs cmd against the selected part.
func (s *Session) Apply(cmd Command) error {
	p, index := s.store.Selected()
	if p == nil {
		return errors.FailedPrecondition("no part selected")
	}

	switch cmd.Op {
	case OpScale:
		p.SetScale(cmd.Value)
	case OpAdjustScale:
		p.AdjustScale(cmd.Value)
	case OpResetScale:
		p.ResetScale()
	case OpRotate:
		p.Rotate(int(cmd.Value))
	case OpFlipHorizontal:
		p.Flip(Horizontal)
	case OpFlipVertical:
		p.Flip(Vertical)
	case OpLayerUp:
		s.store.Reorder(index, Up)
	case OpLayerDown:
		s.store.Reorder(index, Down)
	case OpLayerFront:
		s.store.Reorder(index, Front)
	case OpLayerBack:
		s.store.Reorder(index, Back)
	case OpRemove:
		s.store.Remove(index)
	default:
		return errors.InvalidArgumentf("unknown command %q", cmd.Op)
	}

	s.scheduler.RequestRedraw()
	return nil
}

// Clear empties the workspace without asking.
func (s *Session) Clear() {
	s.controller.Handle(InputEvent{Kind: PointerUp})
	s.store.Clear()
	s.scheduler.RequestRedraw()
}

// ChangeSources swaps the active creatures. A non-empty workspace is cleared
// only if confirm approves; a nil confirm counts as a refusal.
func (s *Session) ChangeSources(sources []string, entries []CatalogEntry, confirm Confirmer) error {
	if s.store.Len() > 0 && (confirm == nil || !confirm.Confirm(ConfirmClearMessage)) {
		return errors.Aborted("workspace not cleared")
	}

	s.sources = append([]string(nil), sources...)
	s.catalog = NewCatalog(s.catalog.Policy(), entries)
	for _, e := range entries {
		s.cache.Prefetch(e.Image)
	}
	s.Clear()
	return nil
}

// RedrawPending reports whether the next Frame call will repaint.
func (s *Session) RedrawPending() bool {
	return s.scheduler.Pending()
}

// Frame returns the live frame, painting first if a redraw is pending.
func (s *Session) Frame() *image.RGBA {
	s.scheduler.Flush()
	return s.renderer.Frame()
}

// Export renders the tight native-scale image of the composite. It waits for
// the placed parts' decodes so no ready-to-be part is left out.
func (s *Session) Export() (*image.RGBA, error) {
	imgs := make([]*sprite.Image, 0, len(s.store.parts))
	for _, p := range s.store.parts {
		imgs = append(imgs, p.Image)
	}
	s.cache.Await(imgs...)
	return s.renderer.Export(s.store.parts)
}

// Snapshot returns a copy of the presentable state.
func (s *Session) Snapshot() Snapshot {
	_, selected := s.store.Selected()
	parts := make([]PlacedPart, 0, s.store.Len())
	for _, p := range s.store.parts {
		parts = append(parts, *p)
	}
	return Snapshot{
		ID:       s.ID,
		Sources:  s.Sources(),
		State:    s.State(),
		Policy:   s.catalog.Policy().Name(),
		Catalog:  s.catalog.Entries(),
		Layers:   s.store.Layers(),
		Parts:    parts,
		Selected: selected,
	}
}
