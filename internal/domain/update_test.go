package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestOverviewUpdate_NilFieldsLeaveValues(t *testing.T) {
	sec := NewSections()
	sec.Overview.Observations = "keep"
	sec.Overview.ASCStatus = DiagSuspected

	Apply(&sec, OverviewUpdate{Strengths: strPtr("new strengths")})

	assert.Equal(t, "keep", sec.Overview.Observations)
	assert.Equal(t, "new strengths", sec.Overview.Strengths)
	assert.Equal(t, DiagSuspected, sec.Overview.ASCStatus)
}

func TestOverviewUpdate_EmptyStringClearsField(t *testing.T) {
	sec := NewSections()
	sec.Overview.Observations = "old"

	// A non-nil empty value is a deliberate clear, not an omission.
	Apply(&sec, OverviewUpdate{Observations: strPtr("")})

	assert.Equal(t, "", sec.Overview.Observations)
}

func TestOverviewUpdate_ReferralsReplaceWholesale(t *testing.T) {
	sec := NewSections()
	sec.Overview.Referrals = Referrals{Audiology: true}

	Apply(&sec, OverviewUpdate{Referrals: &Referrals{Genetics: true}})

	assert.False(t, sec.Overview.Referrals.Audiology)
	assert.True(t, sec.Overview.Referrals.Genetics)
}

func TestRatingsUpdate_ReplacesRatingsObject(t *testing.T) {
	sec := NewSections()

	Apply(&sec, RatingsUpdate{
		Key:     ModuleSensory,
		Ratings: map[string]int{"visual": 5},
		Notes:   strPtr("covers ears in the corridor"),
	})

	assert.Equal(t, map[string]int{"visual": 5}, sec.Sensory.Ratings)
	assert.Equal(t, "covers ears in the corridor", sec.Sensory.Notes)
	// Behaviour module untouched.
	assert.Equal(t, DefaultRating, sec.Behavior.Ratings["routines"])
}

func TestRatingsUpdate_TargetsBehaviorModule(t *testing.T) {
	sec := NewSections()

	Apply(&sec, RatingsUpdate{Key: ModuleBehavior, Ratings: map[string]int{"routines": 1}})

	assert.Equal(t, 1, sec.Behavior.Ratings["routines"])
	assert.Equal(t, DefaultRating, sec.Sensory.Ratings["visual"])
}

func TestMilestonesAndLogUpdates(t *testing.T) {
	sec := NewSections()

	Apply(&sec, MilestonesUpdate{Milestones: []Milestone{{ID: "walking", ExpectedMonths: 13}}})
	Apply(&sec, LogUpdate{Entries: []LogEntry{{ID: "e1", Title: "visit"}}})

	assert.Len(t, sec.Milestones.Milestones, 1)
	assert.Len(t, sec.Log.Entries, 1)

	// nil slices mean "no change", not "clear"
	Apply(&sec, MilestonesUpdate{})
	Apply(&sec, LogUpdate{})
	assert.Len(t, sec.Milestones.Milestones, 1)
	assert.Len(t, sec.Log.Entries, 1)
}

func TestSectionUpdate_ModuleKeys(t *testing.T) {
	assert.Equal(t, ModuleOverview, OverviewUpdate{}.Module())
	assert.Equal(t, ModuleSensory, RatingsUpdate{Key: ModuleSensory}.Module())
	assert.Equal(t, ModuleSocial, SocialUpdate{}.Module())
	assert.Equal(t, ModuleMilestones, MilestonesUpdate{}.Module())
	assert.Equal(t, ModuleLog, LogUpdate{}.Module())
}
