// Package session holds the canonical in-memory session, reconciles partial
// updates arriving from independently-rendered sub-forms, and writes through
// to the repository with debouncing. Exactly one session is active per
// Store; the Store is constructed at the composition root and passed by
// handle, never reached through package globals.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/caregrid/intake/internal/clock"
	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/progress"
	"github.com/caregrid/intake/internal/repository"
	"github.com/caregrid/intake/internal/sessionid"
)

// DefaultDebounce is the minimum interval between write-throughs.
const DefaultDebounce = 750 * time.Millisecond

// ErrNoSession is returned by mutators when no session is active.
var ErrNoSession = errors.New("no active session")

// Store owns the canonical mutable session. All mutation goes through its
// public operations; each operation is an atomic merge under the store lock.
type Store struct {
	repo  *repository.SessionRepo
	codec *sessionid.Codec
	clk   clock.Clock

	mu         sync.Mutex
	current    *domain.Session
	thresholds *progress.Thresholds

	subs    map[int]func(Event)
	nextSub int

	interval   time.Duration
	timer      clock.Timer
	generation uint64 // bumped on clear/load; stale flushes compare and drop
}

type Option func(*Store)

// WithDebounce overrides the write-through interval.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.interval = d }
}

func New(repo *repository.SessionRepo, codec *sessionid.Codec, clk clock.Clock, opts ...Option) *Store {
	s := &Store{
		repo:     repo,
		codec:    codec,
		clk:      clk,
		subs:     make(map[int]func(Event)),
		interval: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Active reports whether a session is currently held.
func (s *Store) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Snapshot returns a deep copy of the current session. This is the read-only
// handoff the submission pipeline consumes; mutating it has no effect on the
// store.
func (s *Store) Snapshot() (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, false
	}
	return s.current.Clone(), true
}

// Progress recomputes the completion report for the current session.
func (s *Store) Progress() progress.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return progress.Report{PerModule: map[domain.ModuleKey]float64{}}
	}
	return progress.Compute(s.current)
}

// Subscribe registers a callback for committed changes and persistence
// events. The returned function unregisters it.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// SetClinicianInfo validates the required fields, then creates the session
// (assigning an identifier) or amends the active draft. Nothing is mutated
// on validation failure.
func (s *Store) SetClinicianInfo(info domain.ClinicianInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.current != nil && s.current.Submitted() {
		events := s.noOpLocked(domain.ModuleOverview)
		s.mu.Unlock()
		s.dispatch(events)
		return nil
	}

	if s.current == nil {
		s.current = domain.NewSession()
		s.thresholds = progress.NewThresholds()
	}
	if s.current.ID == "" {
		id, err := s.codec.Generate(info.Name, info.ChildName)
		if err != nil {
			s.mu.Unlock()
			return err
		}
		s.current.ID = id
	}
	s.current.Clinician = info
	if s.current.Status == "" {
		s.current.Status = domain.StatusDraft
	}
	events := s.commitLocked()
	s.mu.Unlock()
	s.dispatch(events)
	return nil
}

// Load replaces the active session with a previously persisted one (draft
// recovery). Any pending write for the prior session is cancelled first.
// The threshold watermark is re-seeded from the recomputed score so old
// celebrations do not replay.
func (s *Store) Load(sess *domain.Session) {
	s.mu.Lock()
	s.cancelPendingLocked()
	s.current = sess.Clone()
	s.thresholds = progress.Resume(progress.Compute(s.current).Overall)
	s.codec.Register(s.current.ID)
	snap := s.current.Clone()
	report := progress.Compute(s.current)
	events := []Event{{Kind: EventStateChanged, Session: snap, Progress: report}}
	s.mu.Unlock()
	s.dispatch(events)
}

// UpdateSection merges a partial update into the named module, recomputes
// progress, notifies subscribers exactly once, and schedules a debounced
// write-through. Updates against a submitted session are silent no-ops with
// a diagnostic event.
func (s *Store) UpdateSection(update domain.SectionUpdate) error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return ErrNoSession
	}
	if s.current.Submitted() {
		events := s.noOpLocked(update.Module())
		s.mu.Unlock()
		s.dispatch(events)
		return nil
	}
	domain.Apply(&s.current.Sections, update)
	events := s.commitLocked()
	s.mu.Unlock()
	s.dispatch(events)
	return nil
}

// MarkSubmitted freezes the session and flushes the final state
// immediately, so the trailing debounce window cannot lose the submission.
func (s *Store) MarkSubmitted() error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return ErrNoSession
	}
	if s.current.Submitted() {
		s.mu.Unlock()
		return nil
	}
	s.current.Status = domain.StatusSubmitted
	s.cancelPendingLocked()
	snap := s.current.Clone()
	report := progress.Compute(s.current)
	events := []Event{{Kind: EventStateChanged, Session: snap, Progress: report}}
	s.mu.Unlock()

	err := s.repo.Save(snap)
	s.dispatch(events)
	if err != nil {
		s.dispatch([]Event{{Kind: EventSaveFailed, Err: err}})
	}
	return err
}

// Clear cancels any pending write, removes the persisted record, and resets
// the store to the no-session state. Calling it twice is a no-op the second
// time: the record is removed exactly once.
func (s *Store) Clear() error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil
	}
	s.cancelPendingLocked()
	id := s.current.ID
	s.current = nil
	s.thresholds = nil
	s.mu.Unlock()

	if id != "" {
		if err := s.repo.Delete(id); err != nil {
			return err
		}
	}
	return nil
}

// Detach releases the current session without deleting its persisted
// record, flushing any pending write first so an orphaned draft keeps its
// latest edits.
func (s *Store) Detach() error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil
	}
	s.cancelPendingLocked()
	var snap *domain.Session
	if s.current.ID != "" && !s.current.Submitted() {
		snap = s.current.Clone()
	}
	s.current = nil
	s.thresholds = nil
	s.mu.Unlock()

	if snap != nil {
		return s.repo.Save(snap)
	}
	return nil
}

// commitLocked schedules the write-through and builds the notification
// batch for a successful mutation. Caller holds the lock.
func (s *Store) commitLocked() []Event {
	report := progress.Compute(s.current)
	snap := s.current.Clone()

	events := []Event{{Kind: EventStateChanged, Session: snap, Progress: report}}
	for _, lvl := range s.thresholds.Advance(report.Overall) {
		events = append(events, Event{Kind: EventMilestone, Threshold: lvl, Progress: report})
	}

	s.scheduleSaveLocked()
	return events
}

func (s *Store) noOpLocked(key domain.ModuleKey) []Event {
	return []Event{{Kind: EventSubmittedNoOp, Module: key}}
}

// dispatch invokes subscribers outside the store lock so callbacks may call
// back into the store.
func (s *Store) dispatch(events []Event) {
	if len(events) == 0 {
		return
	}
	s.mu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, ev := range events {
		for _, fn := range fns {
			fn(ev)
		}
	}
}
