package workspace

// Scheduler coalesces redraw requests. Any number of requests between two
// flushes collapse into one paint, so input rate never drives paint rate.
type Scheduler struct {
	paint   func()
	pending bool

	requests int
	paints   int
}

// NewScheduler creates a scheduler that calls paint on Flush.
func NewScheduler(paint func()) *Scheduler {
	return &Scheduler{paint: paint}
}

// RequestRedraw marks a redraw as pending. A request already pending is
// replaced rather than queued.
func (s *Scheduler) RequestRedraw() {
	s.requests++
	s.pending = true
}

// Pending reports whether a redraw is waiting for the next frame
func (s *Scheduler) Pending() bool {
	return s.pending
}

// Flush paints once if a redraw is pending and reports whether it painted.
func (s *Scheduler) Flush() bool {
	if !s.pending {
		return false
	}
	s.pending = false
	s.paints++
	s.paint()
	return true
}

// Stats returns how many redraws were requested and how many paints ran.
func (s *Scheduler) Stats() (requests, paints int) {
	return s.requests, s.paints
}
