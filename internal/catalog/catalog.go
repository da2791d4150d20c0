// Package catalog provides the developmental-milestone catalog the timeline
// is seeded from: a built-in set plus an optional YAML overlay for clinics
// that track additional milestones.
package catalog

import (
	"fmt"
	"os"

	"github.com/caregrid/intake/internal/domain"
	"gopkg.in/yaml.v3"
)

// builtin is the fixed catalog. IDs are stable: placements reference them
// across save/load.
var builtin = []domain.Milestone{
	{ID: "social-smile", Title: "Social smile", Category: domain.MilestoneSocial, ExpectedMonths: 2},
	{ID: "babbling", Title: "Babbling", Category: domain.MilestoneCommunication, ExpectedMonths: 6},
	{ID: "sits-unsupported", Title: "Sits without support", Category: domain.MilestoneMotor, ExpectedMonths: 6},
	{ID: "responds-to-name", Title: "Responds to name", Category: domain.MilestoneSocial, ExpectedMonths: 9},
	{ID: "crawling", Title: "Crawling", Category: domain.MilestoneMotor, ExpectedMonths: 9},
	{ID: "pointing", Title: "Points to show interest", Category: domain.MilestoneCommunication, ExpectedMonths: 12},
	{ID: "first-words", Title: "First words", Category: domain.MilestoneCommunication, ExpectedMonths: 12},
	{ID: "walking", Title: "Walks independently", Category: domain.MilestoneMotor, ExpectedMonths: 13},
	{ID: "joint-attention", Title: "Shares attention with adult", Category: domain.MilestoneSocial, ExpectedMonths: 15},
	{ID: "skill-regression", Title: "Loss of previously acquired skills", Category: domain.MilestoneConcerns, ExpectedMonths: 18},
	{ID: "two-word-phrases", Title: "Two-word phrases", Category: domain.MilestoneCommunication, ExpectedMonths: 24},
	{ID: "pretend-play", Title: "Pretend play", Category: domain.MilestoneSocial, ExpectedMonths: 24},
	{ID: "limited-gestures", Title: "Limited use of gestures", Category: domain.MilestoneConcerns, ExpectedMonths: 12},
	{ID: "runs", Title: "Runs steadily", Category: domain.MilestoneMotor, ExpectedMonths: 24},
	{ID: "simple-sentences", Title: "Simple sentences", Category: domain.MilestoneCommunication, ExpectedMonths: 36},
	{ID: "peer-play", Title: "Plays with other children", Category: domain.MilestoneSocial, ExpectedMonths: 36},
}

// Builtin returns a copy of the built-in catalog.
func Builtin() []domain.Milestone {
	out := make([]domain.Milestone, len(builtin))
	copy(out, builtin)
	return out
}

type overlayEntry struct {
	ID             string `yaml:"id"`
	Title          string `yaml:"title"`
	Category       string `yaml:"category"`
	ExpectedMonths int    `yaml:"expected_months"`
}

type overlayFile struct {
	Milestones []overlayEntry `yaml:"milestones"`
}

// Load returns the built-in catalog merged with the YAML overlay at path.
// Overlay entries with a known ID replace the built-in entry; new IDs
// append. An empty path returns the built-in catalog unchanged.
func Load(path string) ([]domain.Milestone, error) {
	out := Builtin()
	if path == "" {
		return out, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading milestone catalog: %w", err)
	}
	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing milestone catalog: %w", err)
	}

	index := make(map[string]int, len(out))
	for i, m := range out {
		index[m.ID] = i
	}
	for _, e := range overlay.Milestones {
		if e.ID == "" || e.Title == "" {
			return nil, fmt.Errorf("milestone catalog: entries need id and title")
		}
		if !domain.ValidMilestoneCategories[e.Category] {
			return nil, fmt.Errorf("milestone catalog: unknown category %q for %s", e.Category, e.ID)
		}
		m := domain.Milestone{
			ID:             e.ID,
			Title:          e.Title,
			Category:       domain.MilestoneCategory(e.Category),
			ExpectedMonths: e.ExpectedMonths,
		}
		if i, ok := index[e.ID]; ok {
			out[i] = m
		} else {
			index[e.ID] = len(out)
			out = append(out, m)
		}
	}
	return out, nil
}
