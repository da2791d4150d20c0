package repository

import (
	"testing"
	"time"

	"github.com/caregrid/intake/internal/clock"
	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/progress"
	"github.com/caregrid/intake/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*SessionRepo, *storage.MemoryStore, *clock.Manual) {
	t.Helper()
	store := storage.NewMemoryStore()
	clk := clock.NewManual(testStart)
	return NewSessionRepo(store, clk), store, clk
}

func draft(id, email string) *domain.Session {
	s := domain.NewSession()
	s.ID = id
	s.Status = domain.StatusDraft
	s.Clinician = domain.ClinicianInfo{
		Name: "Dr Reyes", Email: email, Clinic: "Sunrise", ChildName: "Charlie",
	}
	return s
}

func TestSessionRepo_SaveLoadRoundTrip(t *testing.T) {
	repo, _, _ := newRepo(t)

	original := draft("AME-CHA-345", "a.reyes@clinic.test")
	original.Sections.Overview.Observations = "Settles slowly."
	original.Sections.Overview.ASCStatus = domain.DiagSuspected
	original.Sections.Sensory.Ratings["visual"] = 5
	months := 15
	original.Sections.Milestones.Milestones = []domain.Milestone{
		{ID: "walking", Title: "Walks independently", Category: domain.MilestoneMotor, ExpectedMonths: 13, ActualMonths: &months},
	}
	require.NoError(t, repo.Save(original))

	loaded, err := repo.Load("AME-CHA-345")
	require.NoError(t, err)

	assert.Equal(t, original.Clinician, loaded.Clinician)
	assert.Equal(t, original.Sections, loaded.Sections)
	assert.Equal(t, original.Status, loaded.Status)

	// Progress is never stored: recomputing from the loaded sections must
	// match recomputing from the original.
	assert.Equal(t, progress.Compute(original).Overall, progress.Compute(loaded).Overall)
}

func TestSessionRepo_SaveStampsLastUpdated(t *testing.T) {
	repo, _, clk := newRepo(t)

	s := draft("AME-CHA-345", "a@b.test")
	require.NoError(t, repo.Save(s))
	assert.Equal(t, clk.Now(), s.LastUpdated)

	loaded, err := repo.Load("AME-CHA-345")
	require.NoError(t, err)
	assert.Equal(t, clk.Now(), loaded.LastUpdated)
}

func TestSessionRepo_LoadNotFound(t *testing.T) {
	repo, _, _ := newRepo(t)

	_, err := repo.Load("AME-CHA-345")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_LoadInvalidRecord(t *testing.T) {
	repo, store, _ := newRepo(t)
	require.NoError(t, store.Write("session/AME-CHA-345", "{not json"))

	_, err := repo.Load("AME-CHA-345")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestSessionRepo_LoadBackfillsMissingDomains(t *testing.T) {
	repo, store, _ := newRepo(t)
	// A record written before ratings existed.
	require.NoError(t, store.Write("session/AME-CHA-345", `{"sessionId":"AME-CHA-345","status":"draft"}`))

	loaded, err := repo.Load("AME-CHA-345")
	require.NoError(t, err)

	for _, d := range domain.SensoryDomains {
		assert.Equal(t, domain.DefaultRating, loaded.Sections.Sensory.Ratings[d])
	}
	assert.Equal(t, domain.DiagNotSpecified, loaded.Sections.Overview.ASCStatus)
	assert.False(t, loaded.Sections.Sensory.Touched())
}

func TestSessionRepo_DeleteIsIdempotent(t *testing.T) {
	repo, store, _ := newRepo(t)
	require.NoError(t, repo.Save(draft("AME-CHA-345", "a@b.test")))

	require.NoError(t, repo.Delete("AME-CHA-345"))
	require.NoError(t, repo.Delete("AME-CHA-345"))

	keys, err := store.Keys("session/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSessionRepo_FindByClinicianEmail(t *testing.T) {
	repo, _, _ := newRepo(t)
	require.NoError(t, repo.Save(draft("AME-CHA-345", "a.reyes@clinic.test")))
	require.NoError(t, repo.Save(draft("BOB-SAM-200", "b.okafor@clinic.test")))

	found, err := repo.FindByClinicianEmail("A.Reyes@clinic.test ")
	require.NoError(t, err)
	assert.Equal(t, "AME-CHA-345", found.ID)
}

func TestSessionRepo_FindByClinicianEmail_SkipsSubmitted(t *testing.T) {
	repo, _, _ := newRepo(t)
	submitted := draft("AME-CHA-345", "a.reyes@clinic.test")
	submitted.Status = domain.StatusSubmitted
	require.NoError(t, repo.Save(submitted))

	_, err := repo.FindByClinicianEmail("a.reyes@clinic.test")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_FindByClinicianEmail_SkipsCorruptRecords(t *testing.T) {
	repo, store, _ := newRepo(t)
	require.NoError(t, store.Write("session/XXX-XXX-100", "corrupt"))
	require.NoError(t, repo.Save(draft("AME-CHA-345", "a.reyes@clinic.test")))

	found, err := repo.FindByClinicianEmail("a.reyes@clinic.test")
	require.NoError(t, err)
	assert.Equal(t, "AME-CHA-345", found.ID)
}

func TestSessionRepo_ListIDs(t *testing.T) {
	repo, _, _ := newRepo(t)
	require.NoError(t, repo.Save(draft("AME-CHA-345", "a@b.test")))
	require.NoError(t, repo.Save(draft("BOB-SAM-200", "c@d.test")))

	ids, err := repo.ListIDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AME-CHA-345", "BOB-SAM-200"}, ids)
}

func TestSessionRepo_ActivePointer(t *testing.T) {
	repo, _, _ := newRepo(t)

	id, err := repo.ActiveID()
	require.NoError(t, err)
	assert.Empty(t, id, "no pointer recorded yet")

	require.NoError(t, repo.SetActive("AME-CHA-345"))
	id, err = repo.ActiveID()
	require.NoError(t, err)
	assert.Equal(t, "AME-CHA-345", id)

	require.NoError(t, repo.ClearActive())
	require.NoError(t, repo.ClearActive()) // clearing twice is fine
	id, err = repo.ActiveID()
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestSessionRepo_ActivePointerInvisibleToScans(t *testing.T) {
	repo, _, _ := newRepo(t)
	require.NoError(t, repo.Save(draft("AME-CHA-345", "a.reyes@clinic.test")))
	require.NoError(t, repo.SetActive("AME-CHA-345"))

	ids, err := repo.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"AME-CHA-345"}, ids)

	_, err = repo.FindByClinicianEmail("nobody@clinic.test")
	assert.ErrorIs(t, err, ErrNotFound)
}
