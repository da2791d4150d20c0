package session

import (
	"fmt"

	"github.com/caregrid/intake/internal/domain"
	"github.com/google/uuid"
)

// Timeline and log mutators. These edit inside the module payload under a
// single lock acquisition; the generic UpdateSection path stays
// wholesale-replace only.

// SeedMilestones fills an empty timeline from the catalog. A timeline that
// already has milestones is left alone so reloaded drafts keep their
// placements.
func (s *Store) SeedMilestones(catalog []domain.Milestone) error {
	return s.mutate(domain.ModuleMilestones, func(sess *domain.Session) error {
		if len(sess.Sections.Milestones.Milestones) > 0 {
			return nil
		}
		seeded := make([]domain.Milestone, len(catalog))
		copy(seeded, catalog)
		sess.Sections.Milestones.Milestones = seeded
		return nil
	})
}

// PlaceMilestone assigns the actual age for a milestone, putting it on the
// timeline. Status derives from the expected/actual gap.
func (s *Store) PlaceMilestone(id string, actualMonths int) error {
	return s.mutate(domain.ModuleMilestones, func(sess *domain.Session) error {
		ms := sess.Sections.Milestones.Milestones
		for i := range ms {
			if ms[i].ID == id {
				v := actualMonths
				ms[i].ActualMonths = &v
				return nil
			}
		}
		return fmt.Errorf("milestone %s not on timeline", id)
	})
}

// AddCustomMilestone appends a clinician-added milestone and returns it.
func (s *Store) AddCustomMilestone(title string, category domain.MilestoneCategory, expectedMonths int) (domain.Milestone, error) {
	m := domain.Milestone{
		ID:             uuid.New().String(),
		Title:          title,
		Category:       category,
		ExpectedMonths: expectedMonths,
		Custom:         true,
	}
	err := s.mutate(domain.ModuleMilestones, func(sess *domain.Session) error {
		sess.Sections.Milestones.Milestones = append(sess.Sections.Milestones.Milestones, m)
		return nil
	})
	return m, err
}

// RemoveMilestone deletes a milestone by id. Milestones are only ever
// removed explicitly, never automatically.
func (s *Store) RemoveMilestone(id string) error {
	return s.mutate(domain.ModuleMilestones, func(sess *domain.Session) error {
		ms := sess.Sections.Milestones.Milestones
		for i := range ms {
			if ms[i].ID == id {
				sess.Sections.Milestones.Milestones = append(ms[:i], ms[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("milestone %s not on timeline", id)
	})
}

// AddLogEntry appends a dated entry to the assessment log and returns it.
func (s *Store) AddLogEntry(title, category, note string) (domain.LogEntry, error) {
	entry := domain.LogEntry{
		ID:       uuid.New().String(),
		Time:     s.clk.Now(),
		Title:    title,
		Category: category,
		Note:     note,
	}
	err := s.mutate(domain.ModuleLog, func(sess *domain.Session) error {
		sess.Sections.Log.Entries = append(sess.Sections.Log.Entries, entry)
		return nil
	})
	return entry, err
}

// mutate runs fn against the live session under the lock, then commits:
// recompute progress, notify once, schedule the debounced write. Mutations
// against a submitted session degrade to the diagnostic no-op.
func (s *Store) mutate(key domain.ModuleKey, fn func(*domain.Session) error) error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return ErrNoSession
	}
	if s.current.Submitted() {
		events := s.noOpLocked(key)
		s.mu.Unlock()
		s.dispatch(events)
		return nil
	}
	if err := fn(s.current); err != nil {
		s.mu.Unlock()
		return err
	}
	events := s.commitLocked()
	s.mu.Unlock()
	s.dispatch(events)
	return nil
}
