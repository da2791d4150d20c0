package cli

import (
	"fmt"

	"github.com/caregrid/intake/internal/cli/formatter"
	"github.com/caregrid/intake/internal/session"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Manage the assessment log",
	}

	cmd.AddCommand(
		newLogAddCmd(app),
		newLogListCmd(app),
	)

	return cmd
}

func newLogAddCmd(app *App) *cobra.Command {
	var category, note string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a dated log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Store.AddLogEntry(args[0], category, note)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %q at %s\n", entry.Title, entry.Time.Format("2 Jan 2006 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "observation", "Entry category")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List assessment log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok := app.Store.Snapshot()
			if !ok {
				return session.ErrNoSession
			}
			entries := sess.Sections.Log.Entries
			if len(entries) == 0 {
				fmt.Println(formatter.StyleDim.Render("No log entries yet."))
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %-12s %s\n",
					formatter.StyleDim.Render(e.Time.Format("2006-01-02 15:04")),
					formatter.StylePurple.Render(e.Category),
					e.Title)
				if e.Note != "" {
					fmt.Printf("    %s\n", e.Note)
				}
			}
			return nil
		},
	}
}
