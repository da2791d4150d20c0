package domain

// SectionUpdate is a partial edit to one module's payload. Each carrier uses
// pointer (or nil-able) fields: non-nil fields replace the corresponding
// section field wholesale, nil fields leave it untouched. This is the
// object-level shallow merge the sub-forms rely on; nothing merges deeper
// than one field.
type SectionUpdate interface {
	Module() ModuleKey
	apply(s *Sections)
}

// Apply merges the update into the sections. Exposed for the state store;
// the merge itself is defined next to each carrier.
func Apply(s *Sections, u SectionUpdate) {
	u.apply(s)
}

// OverviewUpdate edits the status/free-text/referrals module.
type OverviewUpdate struct {
	Observations    *string
	Strengths       *string
	PriorityAreas   *string
	Recommendations *string
	ASCStatus       *DiagnosticStatus
	ADHDStatus      *DiagnosticStatus
	Referrals       *Referrals
}

func (OverviewUpdate) Module() ModuleKey { return ModuleOverview }

func (u OverviewUpdate) apply(s *Sections) {
	setStr(&s.Overview.Observations, u.Observations)
	setStr(&s.Overview.Strengths, u.Strengths)
	setStr(&s.Overview.PriorityAreas, u.PriorityAreas)
	setStr(&s.Overview.Recommendations, u.Recommendations)
	if u.ASCStatus != nil {
		s.Overview.ASCStatus = *u.ASCStatus
	}
	if u.ADHDStatus != nil {
		s.Overview.ADHDStatus = *u.ADHDStatus
	}
	if u.Referrals != nil {
		s.Overview.Referrals = *u.Referrals
	}
}

// RatingsUpdate edits a rated module (sensory profile or behaviour). A
// non-nil Ratings map replaces the whole ratings object.
type RatingsUpdate struct {
	Key     ModuleKey
	Ratings map[string]int
	Notes   *string
}

func (u RatingsUpdate) Module() ModuleKey { return u.Key }

func (u RatingsUpdate) apply(s *Sections) {
	target := &s.Sensory
	if u.Key == ModuleBehavior {
		target = &s.Behavior
	}
	if u.Ratings != nil {
		target.Ratings = u.Ratings
	}
	setStr(&target.Notes, u.Notes)
}

// SocialUpdate edits the social-communication module.
type SocialUpdate struct {
	Levels map[string]string
	Notes  *string
}

func (SocialUpdate) Module() ModuleKey { return ModuleSocial }

func (u SocialUpdate) apply(s *Sections) {
	if u.Levels != nil {
		s.Social.Levels = u.Levels
	}
	setStr(&s.Social.Notes, u.Notes)
}

// MilestonesUpdate replaces the milestone list wholesale.
type MilestonesUpdate struct {
	Milestones []Milestone
}

func (MilestonesUpdate) Module() ModuleKey { return ModuleMilestones }

func (u MilestonesUpdate) apply(s *Sections) {
	if u.Milestones != nil {
		s.Milestones.Milestones = u.Milestones
	}
}

// LogUpdate replaces the assessment-log entries wholesale.
type LogUpdate struct {
	Entries []LogEntry
}

func (LogUpdate) Module() ModuleKey { return ModuleLog }

func (u LogUpdate) apply(s *Sections) {
	if u.Entries != nil {
		s.Log.Entries = u.Entries
	}
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
