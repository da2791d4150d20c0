// Package recovery decides between resuming an existing draft and starting
// a fresh session, driven either by clinician info (email lookup) or by a
// directly entered session identifier.
package recovery

import (
	"errors"
	"fmt"

	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/repository"
	"github.com/caregrid/intake/internal/session"
	"github.com/caregrid/intake/internal/sessionid"
)

type State string

const (
	StateNoSession             State = "no_session"
	StateAwaitingClinicianInfo State = "awaiting_clinician_info"
	StateDraftActive           State = "draft_active"
	StateSubmitted             State = "submitted"
)

// Flow is the intake state machine:
// NoSession -> AwaitingClinicianInfo -> DraftActive -> Submitted.
// Submitted is terminal for that session identifier; a new report always
// mints a new one.
type Flow struct {
	store *session.Store
	repo  *repository.SessionRepo
	codec *sessionid.Codec
	state State
}

func New(store *session.Store, repo *repository.SessionRepo, codec *sessionid.Codec) *Flow {
	return &Flow{store: store, repo: repo, codec: codec, state: StateNoSession}
}

func (f *Flow) State() State { return f.state }

// Begin opens the clinician-info step. From Submitted or DraftActive it
// orphans the held session first: its record stays on storage, and an
// unsubmitted draft flushes its latest edits on the way out. A draft for
// the same email surfaces again as the resume choice in BeginIntake.
func (f *Flow) Begin() error {
	switch f.state {
	case StateNoSession, StateAwaitingClinicianInfo:
	default:
		if err := f.store.Detach(); err != nil {
			return err
		}
	}
	f.state = StateAwaitingClinicianInfo
	return nil
}

// Pending is an existing unsubmitted draft found for the clinician. The
// caller presents the choice; nothing is mutated until Resume or StartNew.
type Pending struct {
	flow     *Flow
	info     domain.ClinicianInfo
	existing *domain.Session
}

// Existing returns the draft that would be resumed.
func (p *Pending) Existing() *domain.Session { return p.existing }

// Resume loads the found draft into the state store.
func (p *Pending) Resume() error {
	p.flow.store.Load(p.existing)
	p.flow.state = StateDraftActive
	return p.flow.repo.SetActive(p.existing.ID)
}

// StartNew creates a fresh session with a new identifier. The old draft is
// orphaned on storage, never deleted.
func (p *Pending) StartNew() error {
	if err := p.flow.store.SetClinicianInfo(p.info); err != nil {
		return err
	}
	p.flow.state = StateDraftActive
	return p.flow.recordActive()
}

// BeginIntake submits the clinician info. When an unsubmitted draft already
// exists for the email, the returned Pending carries the resume-or-new
// choice; otherwise a fresh session starts immediately and Pending is nil.
// Validation failures mutate nothing.
func (f *Flow) BeginIntake(info domain.ClinicianInfo) (*Pending, error) {
	if f.state != StateAwaitingClinicianInfo {
		if err := f.Begin(); err != nil {
			return nil, err
		}
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}

	existing, err := f.repo.FindByClinicianEmail(info.Email)
	switch {
	case err == nil:
		return &Pending{flow: f, info: info, existing: existing}, nil
	case errors.Is(err, repository.ErrNotFound):
		if err := f.store.SetClinicianInfo(info); err != nil {
			return nil, err
		}
		f.state = StateDraftActive
		return nil, f.recordActive()
	default:
		return nil, err
	}
}

// ResumeByID resumes a draft from a directly entered identifier. A malformed
// identifier fails before any lookup; a well-formed identifier with no
// record surfaces repository.ErrNotFound. Neither failure mutates state.
func (f *Flow) ResumeByID(raw string) error {
	id, err := f.codec.Normalize(raw)
	if err != nil {
		return err
	}
	sess, err := f.repo.Load(id)
	if err != nil {
		return err
	}
	f.store.Load(sess)
	if sess.Submitted() {
		f.state = StateSubmitted
	} else {
		f.state = StateDraftActive
	}
	return f.repo.SetActive(sess.ID)
}

// Reopen resumes the session a previous process run left active. A missing
// pointer is a no-op; a stale pointer (record gone or malformed id) is
// dropped so startup never fails on leftovers.
func (f *Flow) Reopen() error {
	id, err := f.repo.ActiveID()
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	err = f.ResumeByID(id)
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, sessionid.ErrInvalidFormat):
		return f.repo.ClearActive()
	default:
		return err
	}
}

// Submit finalizes the active draft. The active pointer is dropped: a
// submitted session is terminal, the next run starts from NoSession.
func (f *Flow) Submit() error {
	if f.state != StateDraftActive {
		return fmt.Errorf("no active draft to submit")
	}
	if err := f.store.MarkSubmitted(); err != nil {
		return err
	}
	f.state = StateSubmitted
	return f.repo.ClearActive()
}

// Discard clears the active session, in memory and on storage.
func (f *Flow) Discard() error {
	if err := f.store.Clear(); err != nil {
		return err
	}
	f.state = StateNoSession
	return f.repo.ClearActive()
}

// recordActive points the pointer key at the session now held by the store.
func (f *Flow) recordActive() error {
	sess, ok := f.store.Snapshot()
	if !ok {
		return nil
	}
	return f.repo.SetActive(sess.ID)
}
