package cli

import (
	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/recovery"
	"github.com/caregrid/intake/internal/session"
	"github.com/caregrid/intake/internal/sessionid"
	"github.com/spf13/cobra"
)

// App holds the engine handles CLI commands work against.
type App struct {
	Store   *session.Store
	Flow    *recovery.Flow
	Codec   *sessionid.Codec
	Catalog []domain.Milestone

	// Interactive selects huh forms over flag-driven input. The composition
	// root sets it from isatty.
	Interactive bool
}

// NewRootCmd creates the top-level "intake" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "intake",
		Short: "Clinician assessment intake sessions",
	}

	root.AddCommand(
		newNewCmd(app),
		newResumeCmd(app),
		newStatusCmd(app),
		newSectionCmd(app),
		newMilestoneCmd(app),
		newLogCmd(app),
		newSubmitCmd(app),
		newClearCmd(app),
		newDashboardCmd(app),
	)

	return root
}
