package session

import (
	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/progress"
)

type EventKind string

const (
	// EventStateChanged carries a fresh snapshot after a committed change.
	EventStateChanged EventKind = "state_changed"

	// EventMilestone signals a celebratory progress threshold crossing.
	// The engine only emits the signal; rendering is the UI's business.
	EventMilestone EventKind = "milestone"

	// EventSaveFailed reports a durable-store write failure. The in-memory
	// session remains the source of truth; only persistence is behind.
	EventSaveFailed EventKind = "save_failed"

	// EventSubmittedNoOp is the diagnostic for a mutation attempted against
	// a submitted session. Not an error: it usually indicates a UI race.
	EventSubmittedNoOp EventKind = "submitted_noop"
)

// Event is delivered to subscribers on every committed change and on
// persistence failures, tagged so the UI can distinguish "your data changed"
// from "your data is safe but not yet saved".
type Event struct {
	Kind     EventKind
	Session  *domain.Session // snapshot; nil for non-state events
	Progress progress.Report // populated for state changes and milestones

	Threshold int              // EventMilestone: the level crossed
	Module    domain.ModuleKey // EventSubmittedNoOp: the rejected module
	Err       error            // EventSaveFailed
}
