// Package repository maps session identifiers to serialized session records
// in the durable store. The persisted record shape is the session itself:
// {sessionId, clinicianInfo, sections, status, lastUpdated}. Aggregate
// progress is deliberately absent from the record; callers recompute it from
// sections after every load.
package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/caregrid/intake/internal/clock"
	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/storage"
)

const (
	keyPrefix = "session/"

	// activeKey holds the identifier of the session the next process run
	// should reopen. Lives outside the session/ prefix so scans skip it.
	activeKey = "active"
)

// SessionRepo persists sessions through the storage port. A failed adapter
// write is wrapped and returned once, never retried here.
type SessionRepo struct {
	store storage.Store
	clk   clock.Clock
}

func NewSessionRepo(store storage.Store, clk clock.Clock) *SessionRepo {
	return &SessionRepo{store: store, clk: clk}
}

// Load reads and decodes the session for id. Returns ErrNotFound when no
// record exists.
func (r *SessionRepo) Load(id string) (*domain.Session, error) {
	raw, ok, err := r.store.Read(keyPrefix + id)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return decode(id, raw)
}

// Save stamps LastUpdated and writes the serialized session.
func (r *SessionRepo) Save(s *domain.Session) error {
	s.LastUpdated = r.clk.Now()
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", s.ID, err)
	}
	if err := r.store.Write(keyPrefix+s.ID, string(data)); err != nil {
		return fmt.Errorf("saving session %s: %w", s.ID, err)
	}
	return nil
}

// Delete removes the persisted record. Deleting an absent record is a no-op.
func (r *SessionRepo) Delete(id string) error {
	if err := r.store.Remove(keyPrefix + id); err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	return nil
}

// FindByClinicianEmail scans stored sessions for an unsubmitted draft whose
// clinician email matches, case-insensitively. Returns ErrNotFound when no
// draft matches. Records that fail to decode are skipped rather than
// blocking recovery of the rest.
func (r *SessionRepo) FindByClinicianEmail(email string) (*domain.Session, error) {
	keys, err := r.store.Keys(keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("scanning sessions: %w", err)
	}
	want := strings.ToLower(strings.TrimSpace(email))
	for _, key := range keys {
		raw, ok, err := r.store.Read(key)
		if err != nil || !ok {
			continue
		}
		s, err := decode(strings.TrimPrefix(key, keyPrefix), raw)
		if err != nil {
			continue
		}
		if s.Submitted() {
			continue
		}
		if strings.ToLower(strings.TrimSpace(s.Clinician.Email)) == want {
			return s, nil
		}
	}
	return nil, fmt.Errorf("draft for %s: %w", email, ErrNotFound)
}

// SetActive records id as the active session, to be reopened by the next
// process run.
func (r *SessionRepo) SetActive(id string) error {
	if err := r.store.Write(activeKey, id); err != nil {
		return fmt.Errorf("recording active session: %w", err)
	}
	return nil
}

// ActiveID returns the recorded active-session identifier, or "" when none
// is recorded.
func (r *SessionRepo) ActiveID() (string, error) {
	id, ok, err := r.store.Read(activeKey)
	if err != nil {
		return "", fmt.Errorf("reading active session: %w", err)
	}
	if !ok {
		return "", nil
	}
	return id, nil
}

// ClearActive drops the active-session pointer. Clearing an absent pointer
// is a no-op.
func (r *SessionRepo) ClearActive() error {
	if err := r.store.Remove(activeKey); err != nil {
		return fmt.Errorf("clearing active session: %w", err)
	}
	return nil
}

// ListIDs returns every persisted session identifier. Fed to the identifier
// codec at startup so generation avoids ids already on disk.
func (r *SessionRepo) ListIDs() ([]string, error) {
	keys, err := r.store.Keys(keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, strings.TrimPrefix(key, keyPrefix))
	}
	return ids, nil
}

func decode(id, raw string) (*domain.Session, error) {
	var s domain.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("session %s: %w: %v", id, ErrInvalidRecord, err)
	}
	if s.ID == "" {
		s.ID = id
	}
	normalizeSections(&s.Sections)
	return &s, nil
}

// normalizeSections backfills maps and default ratings for records written
// before a domain was added, so Touched predicates and forms see every
// domain.
func normalizeSections(sec *domain.Sections) {
	if sec.Sensory.Ratings == nil {
		sec.Sensory.Ratings = map[string]int{}
	}
	for _, d := range domain.SensoryDomains {
		if _, ok := sec.Sensory.Ratings[d]; !ok {
			sec.Sensory.Ratings[d] = domain.DefaultRating
		}
	}
	if sec.Behavior.Ratings == nil {
		sec.Behavior.Ratings = map[string]int{}
	}
	for _, d := range domain.BehaviorDomains {
		if _, ok := sec.Behavior.Ratings[d]; !ok {
			sec.Behavior.Ratings[d] = domain.DefaultRating
		}
	}
	if sec.Social.Levels == nil {
		sec.Social.Levels = map[string]string{}
	}
	if sec.Overview.ASCStatus == "" {
		sec.Overview.ASCStatus = domain.DiagNotSpecified
	}
	if sec.Overview.ADHDStatus == "" {
		sec.Overview.ADHDStatus = domain.DiagNotSpecified
	}
}
