package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caregrid/intake/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_ReturnsCopy(t *testing.T) {
	a := Builtin()
	a[0].Title = "mutated"

	b := Builtin()
	assert.NotEqual(t, "mutated", b[0].Title)
}

func TestBuiltin_EntriesAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Builtin() {
		assert.NotEmpty(t, m.ID)
		assert.NotEmpty(t, m.Title)
		assert.True(t, domain.ValidMilestoneCategories[string(m.Category)], "category %q", m.Category)
		assert.Positive(t, m.ExpectedMonths)
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestLoad_EmptyPathReturnsBuiltin(t *testing.T) {
	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Builtin(), got)
}

func TestLoad_OverlayReplacesAndAppends(t *testing.T) {
	path := writeOverlay(t, `
milestones:
  - id: walking
    title: Walks unaided
    category: motor
    expected_months: 14
  - id: stacks-blocks
    title: Stacks four blocks
    category: motor
    expected_months: 20
`)

	got, err := Load(path)
	require.NoError(t, err)

	byID := map[string]domain.Milestone{}
	for _, m := range got {
		byID[m.ID] = m
	}
	assert.Equal(t, "Walks unaided", byID["walking"].Title)
	assert.Equal(t, 14, byID["walking"].ExpectedMonths)
	assert.Equal(t, 20, byID["stacks-blocks"].ExpectedMonths)
	assert.Len(t, got, len(Builtin())+1)
}

func TestLoad_RejectsUnknownCategory(t *testing.T) {
	path := writeOverlay(t, `
milestones:
  - id: bad
    title: Bad entry
    category: cognitive
    expected_months: 10
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown category")
}

func TestLoad_RejectsMissingFields(t *testing.T) {
	path := writeOverlay(t, `
milestones:
  - category: motor
    expected_months: 10
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "need id and title")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading milestone catalog")
}

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
