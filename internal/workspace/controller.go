package workspace

// State is the controller's interaction state
type State string

// Controller states
const (
	StateIdle     State = "idle"
	StateSelected State = "selected"
	StateDragging State = "dragging"
)

// EventKind names an input event
type EventKind string

// Input events dispatched into the controller
const (
	PointerDown EventKind = "pointer_down"
	PointerMove EventKind = "pointer_move"
	PointerUp   EventKind = "pointer_up"
	KeyPress    EventKind = "key"
	SelectLayer EventKind = "select_layer"
)

// Key is an arrow key
type Key string

// Arrow keys
const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
)

// InputEvent is one user interaction. X and Y are raw display coordinates;
// Index is used by SelectLayer only.
type InputEvent struct {
	Kind  EventKind
	X, Y  float64
	Key   Key
	Index int
}

// Redrawer receives redraw requests
type Redrawer interface {
	RequestRedraw()
}

// Controller is the selection and drag state machine over a store.
type Controller struct {
	store        *Store
	redraw       Redrawer
	pointerScale float64
	dragging     bool
}

// NewController creates a controller. pointerScale multiplies raw pointer
// coordinates so a half-size display passes 2; values <= 0 mean 1.
func NewController(store *Store, redraw Redrawer, pointerScale float64) *Controller {
	if pointerScale <= 0 {
		pointerScale = 1
	}
	return &Controller{
		store:        store,
		redraw:       redraw,
		pointerScale: pointerScale,
	}
}

// State derives the current state from selection and drag flag.
func (c *Controller) State() State {
	if p, _ := c.store.Selected(); p == nil {
		return StateIdle
	}
	if c.dragging {
		return StateDragging
	}
	return StateSelected
}

// Handle dispatches ev and reports whether it changed anything visible.
func (c *Controller) Handle(ev InputEvent) bool {
	switch ev.Kind {
	case PointerDown:
		return c.pointerDown(ev.X*c.pointerScale, ev.Y*c.pointerScale)
	case PointerMove:
		return c.pointerMove(ev.X*c.pointerScale, ev.Y*c.pointerScale)
	case PointerUp:
		c.dragging = false
		return false
	case KeyPress:
		return c.key(ev.Key)
	case SelectLayer:
		c.dragging = false
		if !c.store.Select(ev.Index) {
			return false
		}
		c.redraw.RequestRedraw()
		return true
	default:
		return false
	}
}

func (c *Controller) pointerDown(x, y float64) bool {
	hit := c.store.HitTest(x, y)
	if hit < 0 {
		c.dragging = false
		if p, _ := c.store.Selected(); p == nil {
			return false
		}
		c.store.Deselect()
		c.redraw.RequestRedraw()
		return true
	}

	c.store.Select(hit)
	c.dragging = true
	c.redraw.RequestRedraw()
	return true
}

func (c *Controller) pointerMove(x, y float64) bool {
	if !c.dragging {
		return false
	}
	p, _ := c.store.Selected()
	if p == nil {
		c.dragging = false
		return false
	}
	if !p.CenterOn(x, y) {
		return false
	}
	c.redraw.RequestRedraw()
	return true
}

func (c *Controller) key(k Key) bool {
	p, _ := c.store.Selected()
	if p == nil {
		return false
	}

	x, y := p.X, p.Y
	switch k {
	case KeyUp:
		p.Nudge(0, -1)
	case KeyDown:
		p.Nudge(0, 1)
	case KeyLeft:
		p.Nudge(-1, 0)
	case KeyRight:
		p.Nudge(1, 0)
	default:
		return false
	}
	if p.X == x && p.Y == y {
		return false
	}
	c.redraw.RequestRedraw()
	return true
}
