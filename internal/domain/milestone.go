package domain

// Milestone gap thresholds, in months past the expected age.
const (
	milestoneOnTrackGap = 2
	milestoneMonitorGap = 6
)

// Milestone is one developmental milestone on the timeline. Catalog-seeded
// milestones keep their catalog ID; clinician-added ones carry Custom=true.
type Milestone struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Category       MilestoneCategory `json:"category"`
	ExpectedMonths int               `json:"expectedMonths"`
	ActualMonths   *int              `json:"actualMonths,omitempty"`
	Custom         bool              `json:"custom,omitempty"`
}

// Placed reports whether the milestone has been assigned an actual age.
func (m Milestone) Placed() bool {
	return m.ActualMonths != nil
}

// Status derives the milestone status from the gap between actual and
// expected age. Unplaced milestones have no status yet.
func (m Milestone) Status() MilestoneStatus {
	if m.ActualMonths == nil {
		return MilestoneUnplaced
	}
	gap := *m.ActualMonths - m.ExpectedMonths
	switch {
	case gap <= milestoneOnTrackGap:
		return MilestoneOnTrack
	case gap <= milestoneMonitorGap:
		return MilestoneMonitor
	default:
		return MilestoneDelayed
	}
}

func (m Milestone) clone() Milestone {
	out := m
	if m.ActualMonths != nil {
		v := *m.ActualMonths
		out.ActualMonths = &v
	}
	return out
}
