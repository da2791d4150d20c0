package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caregrid/intake/internal/cli/formatter"
	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/session"
	"github.com/spf13/cobra"
)

// resolveMilestoneID matches the input against the timeline by exact ID,
// ID prefix, then case-insensitive title substring.
func resolveMilestoneID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("milestone ID is required")
	}
	sess, ok := app.Store.Snapshot()
	if !ok {
		return "", session.ErrNoSession
	}
	timeline := sess.Sections.Milestones.Milestones

	for _, m := range timeline {
		if m.ID == input {
			return m.ID, nil
		}
	}

	var matches []string
	for _, m := range timeline {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m.ID)
		}
	}
	if len(matches) == 0 {
		lower := strings.ToLower(input)
		for _, m := range timeline {
			if strings.Contains(strings.ToLower(m.Title), lower) {
				matches = append(matches, m.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("milestone not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("milestone %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage the milestone timeline",
	}

	cmd.AddCommand(
		newMilestoneListCmd(app),
		newMilestoneSeedCmd(app),
		newMilestonePlaceCmd(app),
		newMilestoneAddCmd(app),
		newMilestoneRemoveCmd(app),
	)

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List milestones on the timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok := app.Store.Snapshot()
			if !ok {
				return session.ErrNoSession
			}
			timeline := sess.Sections.Milestones.Milestones
			if len(timeline) == 0 {
				fmt.Println(formatter.StyleDim.Render("Timeline is empty. Run: intake milestone seed"))
				return nil
			}

			for _, m := range timeline {
				placed := formatter.StyleDim.Render("unplaced")
				if m.Placed() {
					status := m.Status()
					placed = formatter.MilestoneColor(status).Render(
						fmt.Sprintf("%dm (%s)", *m.ActualMonths, status))
				}
				marker := " "
				if m.Custom {
					marker = "+"
				}
				fmt.Printf("%s %-22s %-38s exp %3dm  %s\n",
					marker, m.ID, m.Title, m.ExpectedMonths, placed)
			}
			return nil
		},
	}
}

func newMilestoneSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty timeline from the milestone catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.SeedMilestones(app.Catalog); err != nil {
				return err
			}
			fmt.Printf("Timeline seeded with %d catalog milestones\n", len(app.Catalog))
			return nil
		},
	}
}

func newMilestonePlaceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "place <milestone> <months>",
		Short: "Record the age a milestone was reached",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveMilestoneID(app, args[0])
			if err != nil {
				return err
			}
			months, err := strconv.Atoi(args[1])
			if err != nil || months < 0 || months > 216 {
				return fmt.Errorf("age must be 0-216 months, got %q", args[1])
			}
			if err := app.Store.PlaceMilestone(id, months); err != nil {
				return err
			}
			fmt.Printf("Placed %s at %d months\n", id, months)
			return nil
		},
	}
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var category string
	var expected int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a custom milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidMilestoneCategories[category] {
				return fmt.Errorf("invalid category %q (communication|motor|social|concerns)", category)
			}
			m, err := app.Store.AddCustomMilestone(args[0], domain.MilestoneCategory(category), expected)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s [%s]\n", m.Title, m.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "communication", "Milestone category")
	cmd.Flags().IntVar(&expected, "expected", 0, "Expected age in months")

	return cmd
}

func newMilestoneRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <milestone>",
		Short: "Remove a milestone from the timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveMilestoneID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.RemoveMilestone(id); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", id)
			return nil
		},
	}
}
