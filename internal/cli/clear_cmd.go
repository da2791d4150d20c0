package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard the active session and delete its saved record",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok := app.Store.Snapshot()
			if !ok {
				fmt.Println("No active session.")
				return nil
			}

			if !yes && app.Interactive {
				confirmed := false
				prompt := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("Discard session %s and delete its saved record?", sess.ID)).
							Affirmative("Discard").
							Negative("Keep").
							Value(&confirmed),
					),
				).WithTheme(intakeHuhTheme()).WithShowHelp(false)
				if err := prompt.Run(); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if err := app.Flow.Discard(); err != nil {
				return err
			}
			fmt.Printf("Discarded session %s\n", sess.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
