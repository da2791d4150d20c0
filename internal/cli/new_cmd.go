package cli

import (
	"fmt"

	"github.com/caregrid/intake/internal/cli/formatter"
	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/recovery"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newNewCmd(app *App) *cobra.Command {
	var info domain.ClinicianInfo
	var resumeExisting, startFresh bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new assessment session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Interactive && info.Name == "" {
				if err := clinicianForm(&info).Run(); err != nil {
					return err
				}
			}

			pending, err := app.Flow.BeginIntake(info)
			if err != nil {
				return err
			}
			if pending != nil {
				if err := resolvePending(app, pending, resumeExisting, startFresh); err != nil {
					return err
				}
			}

			if err := app.Store.SeedMilestones(app.Catalog); err != nil {
				return err
			}

			sess, ok := app.Store.Snapshot()
			if !ok {
				return fmt.Errorf("no session after intake")
			}
			fmt.Printf("Session %s %s\n", formatter.StyleBold.Render(sess.ID), formatter.StatusLabel(sess.Status))
			fmt.Println(formatter.StyleDim.Render("Keep the session ID to resume this draft later."))
			return nil
		},
	}

	cmd.Flags().StringVar(&info.Name, "name", "", "Clinician name")
	cmd.Flags().StringVar(&info.Email, "email", "", "Clinician email")
	cmd.Flags().StringVar(&info.Clinic, "clinic", "", "Clinic name")
	cmd.Flags().StringVar(&info.ChildName, "child", "", "Child name")
	cmd.Flags().StringVar(&info.ChildAge, "age", "", "Child age")
	cmd.Flags().StringVar(&info.ChildGender, "gender", "", "Child gender")
	cmd.Flags().BoolVar(&resumeExisting, "resume", false, "Resume an existing draft for this email without asking")
	cmd.Flags().BoolVar(&startFresh, "fresh", false, "Start a new session even when a draft exists for this email")

	return cmd
}

// resolvePending settles the resume-or-new choice when an unsubmitted draft
// already exists for the clinician's email.
func resolvePending(app *App, pending *recovery.Pending, resumeExisting, startFresh bool) error {
	existing := pending.Existing()

	switch {
	case resumeExisting:
		return pending.Resume()
	case startFresh:
		return pending.StartNew()
	case !app.Interactive:
		return fmt.Errorf("draft %s exists for this email; rerun with --resume or --fresh", existing.ID)
	}

	resume := true
	prompt := confirmForm(
		fmt.Sprintf("Draft %s from %s exists. Resume it?",
			existing.ID, existing.LastUpdated.Format("2 Jan 2006 15:04")),
		&resume,
	)
	if err := prompt.Run(); err != nil {
		return err
	}
	if resume {
		return pending.Resume()
	}
	return pending.StartNew()
}

func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Resume").
				Negative("Start new").
				Value(result),
		),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}
