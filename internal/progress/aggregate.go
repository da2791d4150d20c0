// Package progress computes the derived 0-100 completion score for a
// session. Scores are recomputed from section contents on demand, never
// accumulated incrementally, so partial or duplicate updates cannot cause
// drift.
package progress

import (
	"strings"

	"github.com/caregrid/intake/internal/domain"
)

// Fixed product weighting. The four free-text fields, two status fields and
// the referral flags together make up 50 points; the five assessment modules
// the other 50. Do not rebalance without product sign-off.
const (
	textFieldWeight   = 10.0
	statusFieldWeight = 2.5
	referralWeight    = 5.0
	moduleWeight      = 10.0
)

// Report is the aggregate score plus a 0-100 sub-score per module.
type Report struct {
	Overall   float64
	PerModule map[domain.ModuleKey]float64
}

// Compute derives the completion report from current section contents.
func Compute(s *domain.Session) Report {
	ov := s.Sections.Overview

	var texts float64
	for _, text := range []string{
		ov.Observations, ov.Strengths, ov.PriorityAreas, ov.Recommendations,
	} {
		if strings.TrimSpace(text) != "" {
			texts += textFieldWeight
		}
	}

	var statuses float64
	if statusSet(ov.ASCStatus) {
		statuses += statusFieldWeight
	}
	if statusSet(ov.ADHDStatus) {
		statuses += statusFieldWeight
	}

	var referral float64
	if ov.Referrals.Any() {
		referral = referralWeight
	}

	touched := map[domain.ModuleKey]bool{
		domain.ModuleSensory:    s.Sections.Sensory.Touched(),
		domain.ModuleSocial:     s.Sections.Social.Touched(),
		domain.ModuleBehavior:   s.Sections.Behavior.Touched(),
		domain.ModuleMilestones: s.Sections.Milestones.Touched(),
		domain.ModuleLog:        s.Sections.Log.Touched(),
	}

	overall := texts + statuses + referral
	per := make(map[domain.ModuleKey]float64, len(domain.AllModules))

	// Overview sub-score: its 50-point share expressed on a 0-100 scale.
	per[domain.ModuleOverview] = (texts + statuses + referral) * 2

	for key, ok := range touched {
		if ok {
			overall += moduleWeight
			per[key] = 100
		} else {
			per[key] = 0
		}
	}

	return Report{Overall: clamp(overall), PerModule: per}
}

func statusSet(s domain.DiagnosticStatus) bool {
	return s != "" && s != domain.DiagNotSpecified
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
