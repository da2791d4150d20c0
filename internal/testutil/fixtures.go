package testutil

import (
	"time"

	"github.com/caregrid/intake/internal/domain"
)

// Session options
type SessionOption func(*domain.Session)

func WithID(id string) SessionOption {
	return func(s *domain.Session) {
		s.ID = id
	}
}

func WithStatus(status domain.SessionStatus) SessionOption {
	return func(s *domain.Session) {
		s.Status = status
	}
}

func WithEmail(email string) SessionOption {
	return func(s *domain.Session) {
		s.Clinician.Email = email
	}
}

func WithSensoryRating(domainName string, rating int) SessionOption {
	return func(s *domain.Session) {
		s.Sections.Sensory.Ratings[domainName] = rating
	}
}

func WithOverviewTexts(text string) SessionOption {
	return func(s *domain.Session) {
		s.Sections.Overview.Observations = text
		s.Sections.Overview.Strengths = text
		s.Sections.Overview.PriorityAreas = text
		s.Sections.Overview.Recommendations = text
	}
}

// NewTestSession builds a draft session with valid clinician info.
func NewTestSession(opts ...SessionOption) *domain.Session {
	s := domain.NewSession()
	s.ID = "DRA-CHI-500"
	s.Clinician = NewTestClinician()
	s.Status = domain.StatusDraft
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestClinician returns valid clinician info.
func NewTestClinician() domain.ClinicianInfo {
	return domain.ClinicianInfo{
		Name:        "Dr Amelia Reyes",
		Email:       "a.reyes@clinic.test",
		Clinic:      "Sunrise Child Development Centre",
		ChildName:   "Charlie",
		ChildAge:    "4",
		ChildGender: "m",
	}
}

// TestMilestones returns a small fixed catalog for timeline tests.
func TestMilestones() []domain.Milestone {
	return []domain.Milestone{
		{ID: "first-words", Title: "First words", Category: domain.MilestoneCommunication, ExpectedMonths: 12},
		{ID: "walking", Title: "Walks independently", Category: domain.MilestoneMotor, ExpectedMonths: 13},
		{ID: "pretend-play", Title: "Pretend play", Category: domain.MilestoneSocial, ExpectedMonths: 24},
	}
}

// TestStart is the fixed instant manual clocks start from.
var TestStart = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
