package domain

import "time"

// DefaultRating is the resting value for every 1-5 domain rating. A module
// counts toward progress only once at least one rating has moved off it.
const DefaultRating = 3

// SensoryDomains is the fixed set of sensory-profile domains.
var SensoryDomains = []string{
	"visual", "auditory", "tactile", "vestibular",
	"proprioceptive", "oral", "olfactory",
}

// SocialDomains is the fixed set of social-communication domains.
var SocialDomains = []string{
	"eye_contact", "joint_attention", "gestures",
	"play", "peer_interaction", "conversation",
}

// BehaviorDomains is the fixed set of behaviour/interests domains.
var BehaviorDomains = []string{
	"routines", "repetitive_movements", "restricted_interests",
	"sensory_seeking", "flexibility",
}

// Sections holds one payload per assessment module. The engine merges and
// persists these generically by ModuleKey; only the Touched predicates and
// the overview weighting fields are read by the progress aggregator.
type Sections struct {
	Overview   Overview            `json:"overview"`
	Sensory    RatedModule         `json:"sensory"`
	Social     SocialCommunication `json:"social"`
	Behavior   RatedModule         `json:"behavior"`
	Milestones MilestoneTimeline   `json:"milestones"`
	Log        AssessmentLog       `json:"log"`
}

// NewSections returns every module at its default state: all ratings at
// DefaultRating, statuses at the not-specified sentinel, no entries.
func NewSections() Sections {
	return Sections{
		Overview: Overview{
			ASCStatus:  DiagNotSpecified,
			ADHDStatus: DiagNotSpecified,
		},
		Sensory:  newRatedModule(SensoryDomains),
		Social:   SocialCommunication{Levels: map[string]string{}},
		Behavior: newRatedModule(BehaviorDomains),
	}
}

func (s Sections) clone() Sections {
	out := s
	out.Sensory = s.Sensory.clone()
	out.Social = s.Social.clone()
	out.Behavior = s.Behavior.clone()
	out.Milestones = s.Milestones.clone()
	out.Log = s.Log.clone()
	return out
}

// Overview carries the status fields, referral flags and the four free-text
// summary fields.
type Overview struct {
	Observations    string `json:"observations"`
	Strengths       string `json:"strengths"`
	PriorityAreas   string `json:"priorityAreas"`
	Recommendations string `json:"recommendations"`

	ASCStatus  DiagnosticStatus `json:"ascStatus"`
	ADHDStatus DiagnosticStatus `json:"adhdStatus"`

	Referrals Referrals `json:"referrals"`
}

// Referrals are the onward-referral checkboxes.
type Referrals struct {
	SpeechTherapy       bool `json:"speechTherapy"`
	OccupationalTherapy bool `json:"occupationalTherapy"`
	Audiology           bool `json:"audiology"`
	Vision              bool `json:"vision"`
	Genetics            bool `json:"genetics"`
	Other               bool `json:"other"`
}

// Any reports whether at least one referral flag is set.
func (r Referrals) Any() bool {
	return r.SpeechTherapy || r.OccupationalTherapy || r.Audiology ||
		r.Vision || r.Genetics || r.Other
}

// RatedModule is a set of 1-5 domain ratings plus free-form notes. Both the
// sensory profile and the behaviour/interests modules use this shape.
type RatedModule struct {
	Ratings map[string]int `json:"ratings"`
	Notes   string         `json:"notes"`
}

func newRatedModule(domains []string) RatedModule {
	ratings := make(map[string]int, len(domains))
	for _, d := range domains {
		ratings[d] = DefaultRating
	}
	return RatedModule{Ratings: ratings}
}

// Touched reports whether any rating moved off the default or notes were
// entered.
func (m RatedModule) Touched() bool {
	for _, v := range m.Ratings {
		if v != DefaultRating {
			return true
		}
	}
	return m.Notes != ""
}

func (m RatedModule) clone() RatedModule {
	out := m
	out.Ratings = make(map[string]int, len(m.Ratings))
	for k, v := range m.Ratings {
		out.Ratings[k] = v
	}
	return out
}

// SocialCommunication records a qualitative level per domain. An empty map
// entry (or absent key) means the domain has not been assessed yet.
type SocialCommunication struct {
	Levels map[string]string `json:"levels"`
	Notes  string            `json:"notes"`
}

// Touched reports whether any level has been recorded or notes entered.
func (m SocialCommunication) Touched() bool {
	for _, v := range m.Levels {
		if v != "" {
			return true
		}
	}
	return m.Notes != ""
}

func (m SocialCommunication) clone() SocialCommunication {
	out := m
	out.Levels = make(map[string]string, len(m.Levels))
	for k, v := range m.Levels {
		out.Levels[k] = v
	}
	return out
}

// MilestoneTimeline holds the developmental milestones, both catalog-seeded
// and clinician-added.
type MilestoneTimeline struct {
	Milestones []Milestone `json:"milestones"`
}

// Touched reports whether at least one milestone has been placed on the
// timeline.
func (m MilestoneTimeline) Touched() bool {
	for _, ms := range m.Milestones {
		if ms.Placed() {
			return true
		}
	}
	return false
}

func (m MilestoneTimeline) clone() MilestoneTimeline {
	out := m
	out.Milestones = make([]Milestone, len(m.Milestones))
	for i, ms := range m.Milestones {
		out.Milestones[i] = ms.clone()
	}
	return out
}

// AssessmentLog is the chronological record of assessment activity.
type AssessmentLog struct {
	Entries []LogEntry `json:"entries"`
}

// Touched reports whether at least one log entry exists.
func (m AssessmentLog) Touched() bool {
	return len(m.Entries) > 0
}

func (m AssessmentLog) clone() AssessmentLog {
	out := m
	out.Entries = make([]LogEntry, len(m.Entries))
	copy(out.Entries, m.Entries)
	return out
}

// LogEntry is one dated note in the assessment log.
type LogEntry struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
	Note     string    `json:"note"`
}
