package session

import (
	"testing"

	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedMilestones_FillsEmptyTimelineOnly(t *testing.T) {
	store, _ := activeStore(t)

	require.NoError(t, store.SeedMilestones(testutil.TestMilestones()))
	snap, _ := store.Snapshot()
	require.Len(t, snap.Sections.Milestones.Milestones, 3)

	require.NoError(t, store.PlaceMilestone("walking", 15))
	// Re-seeding must not wipe placements.
	require.NoError(t, store.SeedMilestones(testutil.TestMilestones()))

	snap, _ = store.Snapshot()
	require.Len(t, snap.Sections.Milestones.Milestones, 3)
	assert.True(t, snap.Sections.Milestones.Touched())
}

func TestPlaceMilestone_DerivesStatus(t *testing.T) {
	store, _ := activeStore(t)
	require.NoError(t, store.SeedMilestones(testutil.TestMilestones()))

	// walking expected at 13: gap 2 on track, 6 monitor, beyond delayed
	require.NoError(t, store.PlaceMilestone("walking", 15))
	snap, _ := store.Snapshot()
	assert.Equal(t, domain.MilestoneOnTrack, findMilestone(t, snap, "walking").Status())

	require.NoError(t, store.PlaceMilestone("walking", 19))
	snap, _ = store.Snapshot()
	assert.Equal(t, domain.MilestoneMonitor, findMilestone(t, snap, "walking").Status())

	require.NoError(t, store.PlaceMilestone("walking", 24))
	snap, _ = store.Snapshot()
	assert.Equal(t, domain.MilestoneDelayed, findMilestone(t, snap, "walking").Status())
}

func TestPlaceMilestone_UnknownID(t *testing.T) {
	store, _ := activeStore(t)
	require.NoError(t, store.SeedMilestones(testutil.TestMilestones()))

	err := store.PlaceMilestone("no-such-milestone", 12)
	assert.ErrorContains(t, err, "not on timeline")
}

func TestAddCustomMilestone(t *testing.T) {
	store, _ := activeStore(t)

	m, err := store.AddCustomMilestone("Uses fork", domain.MilestoneMotor, 18)
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.True(t, m.Custom)

	snap, _ := store.Snapshot()
	got := findMilestone(t, snap, m.ID)
	assert.Equal(t, "Uses fork", got.Title)
	assert.Equal(t, domain.MilestoneUnplaced, got.Status())
}

func TestRemoveMilestone(t *testing.T) {
	store, _ := activeStore(t)
	require.NoError(t, store.SeedMilestones(testutil.TestMilestones()))

	require.NoError(t, store.RemoveMilestone("pretend-play"))

	snap, _ := store.Snapshot()
	assert.Len(t, snap.Sections.Milestones.Milestones, 2)
	assert.ErrorContains(t, store.RemoveMilestone("pretend-play"), "not on timeline")
}

func TestAddLogEntry(t *testing.T) {
	store, h := activeStore(t)

	entry, err := store.AddLogEntry("Initial observation", "clinic_visit", "Settled after 10 minutes.")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, h.Clock.Now(), entry.Time)

	snap, _ := store.Snapshot()
	require.Len(t, snap.Sections.Log.Entries, 1)
	assert.True(t, snap.Sections.Log.Touched())
}

func TestTimelineMutators_RequireActiveSession(t *testing.T) {
	store, _ := newStore(t)

	assert.ErrorIs(t, store.PlaceMilestone("walking", 12), ErrNoSession)
	_, err := store.AddLogEntry("t", "c", "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func findMilestone(t *testing.T, s *domain.Session, id string) domain.Milestone {
	t.Helper()
	for _, m := range s.Sections.Milestones.Milestones {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("milestone %s not found", id)
	return domain.Milestone{}
}
