package cli

import (
	"errors"
	"fmt"

	"github.com/caregrid/intake/internal/cli/formatter"
	"github.com/caregrid/intake/internal/repository"
	"github.com/caregrid/intake/internal/sessionid"
	"github.com/spf13/cobra"
)

func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume <session-id>",
		Short: "Resume a saved session by its identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Flow.ResumeByID(args[0])
			switch {
			case errors.Is(err, sessionid.ErrInvalidFormat):
				return fmt.Errorf("%q is not a session ID (expected AAA-BBB-NNN): %w", args[0], err)
			case errors.Is(err, repository.ErrNotFound):
				return fmt.Errorf("no saved session for %q", args[0])
			case err != nil:
				return err
			}

			sess, _ := app.Store.Snapshot()
			fmt.Printf("Session %s %s\n", formatter.StyleBold.Render(sess.ID), formatter.StatusLabel(sess.Status))
			if sess.Submitted() {
				fmt.Println(formatter.StyleDim.Render("This session was submitted; it is read-only."))
			} else {
				fmt.Print(formatter.RenderProgressReport(app.Store.Progress()))
			}
			return nil
		},
	}
}
