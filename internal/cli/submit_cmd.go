package cli

import (
	"fmt"

	"github.com/caregrid/intake/internal/cli/formatter"
	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/session"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSubmitCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Finalize the active draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok := app.Store.Snapshot()
			if !ok {
				return session.ErrNoSession
			}
			report := app.Store.Progress()

			if !yes && app.Interactive {
				confirmed := false
				prompt := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("Submit session %s at %.1f%% complete? This cannot be undone.",
								sess.ID, report.Overall)).
							Affirmative("Submit").
							Negative("Cancel").
							Value(&confirmed),
					),
				).WithTheme(intakeHuhTheme()).WithShowHelp(false)
				if err := prompt.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Submission cancelled.")
					return nil
				}
			}

			if err := app.Flow.Submit(); err != nil {
				return err
			}
			fmt.Printf("Session %s %s\n", formatter.StyleBold.Render(sess.ID), formatter.StatusLabel(domain.StatusSubmitted))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
