package domain

type SessionStatus string

const (
	StatusDraft     SessionStatus = "draft"
	StatusSubmitted SessionStatus = "submitted"
)

// ModuleKey names one independently-edited assessment area within a session.
type ModuleKey string

const (
	ModuleOverview   ModuleKey = "overview"
	ModuleSensory    ModuleKey = "sensory"
	ModuleSocial     ModuleKey = "social"
	ModuleBehavior   ModuleKey = "behavior"
	ModuleMilestones ModuleKey = "milestones"
	ModuleLog        ModuleKey = "log"
)

// AllModules is the canonical ordering used by progress reports and the CLI.
var AllModules = []ModuleKey{
	ModuleOverview,
	ModuleSensory,
	ModuleSocial,
	ModuleBehavior,
	ModuleMilestones,
	ModuleLog,
}

// DiagnosticStatus is the value of the ASC/ADHD status fields.
// DiagNotSpecified is the sentinel meaning the clinician has not chosen yet.
type DiagnosticStatus string

const (
	DiagNotSpecified DiagnosticStatus = "not_specified"
	DiagConfirmed    DiagnosticStatus = "confirmed"
	DiagSuspected    DiagnosticStatus = "suspected"
	DiagRuledOut     DiagnosticStatus = "ruled_out"
)

// ValidDiagnosticStatuses is the canonical set of accepted status strings.
var ValidDiagnosticStatuses = map[string]bool{
	"not_specified": true, "confirmed": true,
	"suspected": true, "ruled_out": true,
}

type MilestoneCategory string

const (
	MilestoneCommunication MilestoneCategory = "communication"
	MilestoneMotor         MilestoneCategory = "motor"
	MilestoneSocial        MilestoneCategory = "social"
	MilestoneConcerns      MilestoneCategory = "concerns"
)

// ValidMilestoneCategories is the canonical set of accepted category strings.
var ValidMilestoneCategories = map[string]bool{
	"communication": true, "motor": true, "social": true, "concerns": true,
}

type MilestoneStatus string

const (
	MilestoneUnplaced MilestoneStatus = "unplaced"
	MilestoneOnTrack  MilestoneStatus = "on_track"
	MilestoneMonitor  MilestoneStatus = "monitor"
	MilestoneDelayed  MilestoneStatus = "delayed"
)
