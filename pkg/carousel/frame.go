package carousel

// task identifies deferred work processed at the next frame barrier.
type task int

const (
	// taskReflow recomputes snap points after viewport resize.
	taskReflow task = iota
	// taskSyncSelect re-derives the selected index after an offset change
	// that did not come from the active drag session.
	taskSyncSelect
	taskCount
)

// scheduler coalesces deferred work to at most one run per frame. Requesting
// the same task repeatedly between flushes collapses into a single run, which
// keeps resize bursts and scroll chatter from thrashing layout.
type scheduler struct {
	pending [taskCount]bool
}

func (s *scheduler) request(t task) {
	s.pending[t] = true
}

// take consumes a pending task, returning whether it was scheduled.
func (s *scheduler) take(t task) bool {
	was := s.pending[t]
	s.pending[t] = false
	return was
}

func (s *scheduler) dirty() bool {
	for _, p := range s.pending {
		if p {
			return true
		}
	}
	return false
}

func (s *scheduler) reset() {
	s.pending = [taskCount]bool{}
}
