package session

// Debounced write-through. At most one write per interval; a burst of
// mutations lands as a single trailing write carrying the latest state.
// Each scheduled flush captures the store generation; Clear and Load bump
// the generation, so a flush that fires late for a cleared or replaced
// session drops itself instead of resurrecting stale data. Because the
// flush always serializes the state current at fire time, a write for
// version N can never land after one for N+1.

// scheduleSaveLocked arms the trailing write if none is pending. Caller
// holds the lock.
func (s *Store) scheduleSaveLocked() {
	if s.timer != nil {
		return
	}
	gen := s.generation
	s.timer = s.clk.AfterFunc(s.interval, func() { s.flush(gen) })
}

// cancelPendingLocked stops any armed timer and invalidates in-flight
// flushes. Caller holds the lock.
func (s *Store) cancelPendingLocked() {
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// flush runs on the timer goroutine; it never blocks a mutating caller.
func (s *Store) flush(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || s.current == nil || s.current.ID == "" {
		if gen == s.generation {
			s.timer = nil
		}
		s.mu.Unlock()
		return
	}
	s.timer = nil
	snap := s.current.Clone()
	s.mu.Unlock()

	if err := s.repo.Save(snap); err != nil {
		// Reported once; the in-memory session stays authoritative.
		s.dispatch([]Event{{Kind: EventSaveFailed, Err: err}})
	}
}
