package domain

import (
	"fmt"
	"strings"
	"time"
)

// ClinicianInfo identifies the clinician and the child being assessed.
// Set once at session creation; may be amended while the session is a
// draft but never cleared.
type ClinicianInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Clinic      string `json:"clinic"`
	ChildName   string `json:"childName"`
	ChildAge    string `json:"childAge"`
	ChildGender string `json:"childGender"`
}

// Validate checks that the fields required to open a session are present.
func (c *ClinicianInfo) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(c.Clinic) == "" {
		missing = append(missing, "clinic")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// ValidationError reports required clinician fields that were absent.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Session is the aggregate root for one assessment intake. Aggregate
// progress is intentionally not a field here: it is derived from Sections
// on demand and never persisted as a source of truth.
type Session struct {
	ID          string        `json:"sessionId"`
	Clinician   ClinicianInfo `json:"clinicianInfo"`
	Sections    Sections      `json:"sections"`
	Status      SessionStatus `json:"status"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// NewSession returns an empty session with every module at its default
// (untouched) state.
func NewSession() *Session {
	return &Session{
		Sections: NewSections(),
	}
}

// Submitted reports whether the session has been finalized. Submitted
// sessions must never be mutated.
func (s *Session) Submitted() bool {
	return s.Status == StatusSubmitted
}

// Clone returns a deep copy. Snapshots handed to subscribers and to the
// report pipeline must not share mutable state with the live session.
func (s *Session) Clone() *Session {
	out := *s
	out.Sections = s.Sections.clone()
	return &out
}
