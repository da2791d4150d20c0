package progress

import (
	"testing"

	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_EmptySessionIsZero(t *testing.T) {
	report := Compute(domain.NewSession())

	assert.Equal(t, 0.0, report.Overall)
	for _, key := range domain.AllModules {
		assert.Equal(t, 0.0, report.PerModule[key], "module %s", key)
	}
}

// The fixed product weighting: four filled texts (40) + ASC confirmed (2.5)
// + ADHD unspecified (0) + one referral (5) + one non-default sensory
// rating (10) = 57.5.
func TestCompute_WorkedExample(t *testing.T) {
	s := domain.NewSession()
	s.Sections.Overview.Observations = "Settles slowly in new rooms."
	s.Sections.Overview.Strengths = "Strong visual memory."
	s.Sections.Overview.PriorityAreas = "Expressive language."
	s.Sections.Overview.Recommendations = "Refer to SLT."
	s.Sections.Overview.ASCStatus = domain.DiagConfirmed
	s.Sections.Overview.Referrals.SpeechTherapy = true
	s.Sections.Sensory.Ratings["auditory"] = 5

	report := Compute(s)

	assert.InDelta(t, 57.5, report.Overall, 0.0001)
	assert.Equal(t, 100.0, report.PerModule[domain.ModuleSensory])
	assert.Equal(t, 0.0, report.PerModule[domain.ModuleSocial])
}

func TestCompute_WhitespaceTextsDoNotCount(t *testing.T) {
	s := domain.NewSession()
	s.Sections.Overview.Observations = "   \t\n"

	assert.Equal(t, 0.0, Compute(s).Overall)
}

func TestCompute_FullSessionCapsAt100(t *testing.T) {
	s := testutil.NewTestSession(
		testutil.WithOverviewTexts("filled"),
		testutil.WithSensoryRating("visual", 5),
	)
	s.Sections.Overview.ASCStatus = domain.DiagConfirmed
	s.Sections.Overview.ADHDStatus = domain.DiagRuledOut
	s.Sections.Overview.Referrals.Genetics = true
	s.Sections.Behavior.Ratings["routines"] = 1
	s.Sections.Social.Levels["play"] = "emerging"
	months := 14
	s.Sections.Milestones.Milestones = []domain.Milestone{
		{ID: "walking", ExpectedMonths: 13, ActualMonths: &months},
	}
	s.Sections.Log.Entries = []domain.LogEntry{{ID: "e1", Title: "Initial visit"}}

	report := Compute(s)

	assert.Equal(t, 100.0, report.Overall)
	assert.Equal(t, 100.0, report.PerModule[domain.ModuleOverview])
}

func TestCompute_UnplacedMilestonesDoNotCount(t *testing.T) {
	s := domain.NewSession()
	s.Sections.Milestones.Milestones = testutil.TestMilestones()

	report := Compute(s)

	assert.Equal(t, 0.0, report.PerModule[domain.ModuleMilestones])
}

func TestCompute_Monotonic_ForAddOnlySequence(t *testing.T) {
	s := domain.NewSession()
	prev := Compute(s).Overall

	steps := []func(){
		func() { s.Sections.Overview.Observations = "obs" },
		func() { s.Sections.Overview.ASCStatus = domain.DiagSuspected },
		func() { s.Sections.Overview.Referrals.Audiology = true },
		func() { s.Sections.Sensory.Ratings["tactile"] = 1 },
		func() { s.Sections.Social.Levels["gestures"] = "limited" },
		func() { s.Sections.Log.Entries = append(s.Sections.Log.Entries, domain.LogEntry{ID: "e"}) },
		func() { s.Sections.Overview.Strengths = "str" },
	}
	for i, step := range steps {
		step()
		got := Compute(s).Overall
		require.GreaterOrEqual(t, got, prev, "step %d decreased progress", i)
		prev = got
	}
}

func TestThresholds_FireOnceEach(t *testing.T) {
	th := NewThresholds()

	assert.Empty(t, th.Advance(10))
	assert.Equal(t, []int{25}, th.Advance(30))
	// no re-fire while hovering
	assert.Empty(t, th.Advance(30))
	// a dip never lowers the watermark
	assert.Empty(t, th.Advance(20))
	// a jump crosses several levels at once, ascending
	assert.Equal(t, []int{50, 75, 100}, th.Advance(100))
	assert.Empty(t, th.Advance(100))
}

func TestThresholds_ResumeSuppressesOldLevels(t *testing.T) {
	th := Resume(57.5)

	assert.Empty(t, th.Advance(57.5))
	assert.Equal(t, []int{75}, th.Advance(80))
}
