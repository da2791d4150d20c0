package cli

import (
	"fmt"

	"github.com/caregrid/intake/internal/cli/formatter"
	"github.com/caregrid/intake/internal/session"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active session and its completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok := app.Store.Snapshot()
			if !ok {
				return session.ErrNoSession
			}

			fmt.Printf("Session %s %s\n", formatter.StyleBold.Render(sess.ID), formatter.StatusLabel(sess.Status))
			fmt.Printf("%s %s (%s)\n",
				formatter.StyleDim.Render("Clinician"),
				sess.Clinician.Name, sess.Clinician.Clinic)
			if sess.Clinician.ChildName != "" {
				fmt.Printf("%s %s\n", formatter.StyleDim.Render("Child    "), sess.Clinician.ChildName)
			}
			fmt.Printf("%s %s\n\n",
				formatter.StyleDim.Render("Updated  "),
				sess.LastUpdated.Format("2 Jan 2006 15:04"))

			fmt.Print(formatter.RenderProgressReport(app.Store.Progress()))
			return nil
		},
	}
}
