package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caregrid/intake/internal/domain"
	"github.com/caregrid/intake/internal/session"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// socialLevels are the qualitative ratings for social-communication domains.
var socialLevels = []string{"typical", "emerging", "limited", "absent"}

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Edit one assessment section",
	}

	cmd.AddCommand(
		newOverviewCmd(app),
		newRatedCmd(app, "sensory", "Edit the sensory profile", domain.ModuleSensory, domain.SensoryDomains),
		newSocialCmd(app),
		newRatedCmd(app, "behavior", "Edit behaviour and interests", domain.ModuleBehavior, domain.BehaviorDomains),
	)

	return cmd
}

func newOverviewCmd(app *App) *cobra.Command {
	var observations, strengths, priorities, recommendations string
	var ascStatus, adhdStatus string
	var referrals []string

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Edit statuses, referrals and summary texts",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok := app.Store.Snapshot()
			if !ok {
				return session.ErrNoSession
			}

			if app.Interactive && cmd.Flags().NFlag() == 0 {
				in := overviewInputFrom(sess.Sections.Overview)
				if err := overviewForm(&in).Run(); err != nil {
					return err
				}
				return app.Store.UpdateSection(in.toUpdate())
			}

			var update domain.OverviewUpdate
			set := func(flag string, dst **string, v *string) {
				if cmd.Flags().Changed(flag) {
					*dst = v
				}
			}
			set("observations", &update.Observations, &observations)
			set("strengths", &update.Strengths, &strengths)
			set("priorities", &update.PriorityAreas, &priorities)
			set("recommendations", &update.Recommendations, &recommendations)

			if cmd.Flags().Changed("asc") {
				s, err := parseDiagnosticStatus(ascStatus)
				if err != nil {
					return err
				}
				update.ASCStatus = &s
			}
			if cmd.Flags().Changed("adhd") {
				s, err := parseDiagnosticStatus(adhdStatus)
				if err != nil {
					return err
				}
				update.ADHDStatus = &s
			}
			if cmd.Flags().Changed("referrals") {
				r := referralsFrom(referrals)
				update.Referrals = &r
			}

			return app.Store.UpdateSection(update)
		},
	}

	cmd.Flags().StringVar(&observations, "observations", "", "Clinical observations")
	cmd.Flags().StringVar(&strengths, "strengths", "", "Strengths")
	cmd.Flags().StringVar(&priorities, "priorities", "", "Priority areas")
	cmd.Flags().StringVar(&recommendations, "recommendations", "", "Recommendations")
	cmd.Flags().StringVar(&ascStatus, "asc", "", "ASC status (not_specified|confirmed|suspected|ruled_out)")
	cmd.Flags().StringVar(&adhdStatus, "adhd", "", "ADHD status (not_specified|confirmed|suspected|ruled_out)")
	cmd.Flags().StringSliceVar(&referrals, "referrals", nil, "Referral flags (slt,ot,audiology,vision,genetics,other)")

	return cmd
}

func newRatedCmd(app *App, use, short string, key domain.ModuleKey, domains []string) *cobra.Command {
	var rates []string
	var notes string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok := app.Store.Snapshot()
			if !ok {
				return session.ErrNoSession
			}
			module := sess.Sections.Sensory
			if key == domain.ModuleBehavior {
				module = sess.Sections.Behavior
			}

			if app.Interactive && cmd.Flags().NFlag() == 0 {
				return runRatingsForm(app, short, key, domains, module)
			}

			update := domain.RatingsUpdate{Key: key}
			if len(rates) > 0 {
				ratings := module.Ratings
				for _, arg := range rates {
					name, value, err := splitRate(arg, domains)
					if err != nil {
						return err
					}
					ratings[name] = value
				}
				update.Ratings = ratings
			}
			if cmd.Flags().Changed("notes") {
				update.Notes = &notes
			}
			return app.Store.UpdateSection(update)
		},
	}

	cmd.Flags().StringArrayVar(&rates, "rate", nil, "Domain rating, e.g. --rate visual=4 (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func runRatingsForm(app *App, title string, key domain.ModuleKey, domains []string, module domain.RatedModule) error {
	values := make(map[string]*string, len(domains))
	for _, d := range domains {
		v := strconv.Itoa(module.Ratings[d])
		values[d] = &v
	}
	notes := module.Notes

	if err := ratingsForm(title, domains, values, &notes).Run(); err != nil {
		return err
	}

	ratings := make(map[string]int, len(domains))
	for d, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(*v))
		if err != nil {
			return fmt.Errorf("invalid rating for %s: %q", d, *v)
		}
		ratings[d] = n
	}
	return app.Store.UpdateSection(domain.RatingsUpdate{Key: key, Ratings: ratings, Notes: &notes})
}

func newSocialCmd(app *App) *cobra.Command {
	var levels []string
	var notes string

	cmd := &cobra.Command{
		Use:   "social",
		Short: "Edit social communication",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok := app.Store.Snapshot()
			if !ok {
				return session.ErrNoSession
			}
			module := sess.Sections.Social

			if app.Interactive && cmd.Flags().NFlag() == 0 {
				return runSocialForm(app, module)
			}

			update := domain.SocialUpdate{}
			if len(levels) > 0 {
				merged := module.Levels
				for _, arg := range levels {
					name, value, err := splitLevel(arg)
					if err != nil {
						return err
					}
					merged[name] = value
				}
				update.Levels = merged
			}
			if cmd.Flags().Changed("notes") {
				update.Notes = &notes
			}
			return app.Store.UpdateSection(update)
		},
	}

	cmd.Flags().StringArrayVar(&levels, "level", nil, "Domain level, e.g. --level eye_contact=emerging (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func runSocialForm(app *App, module domain.SocialCommunication) error {
	options := []huh.Option[string]{huh.NewOption("Not assessed", "")}
	for _, lvl := range socialLevels {
		options = append(options, huh.NewOption(strings.ToUpper(lvl[:1])+lvl[1:], lvl))
	}

	values := make(map[string]*string, len(domain.SocialDomains))
	fields := make([]huh.Field, 0, len(domain.SocialDomains)+1)
	for _, d := range domain.SocialDomains {
		v := module.Levels[d]
		values[d] = &v
		fields = append(fields, huh.NewSelect[string]().
			Title(strings.ReplaceAll(d, "_", " ")).
			Options(options...).
			Value(values[d]))
	}
	notes := module.Notes
	fields = append(fields, huh.NewText().Title("Notes").Value(&notes))

	form := huh.NewForm(
		huh.NewGroup(fields...).Title("Social communication"),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	merged := make(map[string]string, len(values))
	for d, v := range values {
		merged[d] = *v
	}
	return app.Store.UpdateSection(domain.SocialUpdate{Levels: merged, Notes: &notes})
}

func parseDiagnosticStatus(s string) (domain.DiagnosticStatus, error) {
	if !domain.ValidDiagnosticStatuses[s] {
		return "", fmt.Errorf("invalid status %q (not_specified|confirmed|suspected|ruled_out)", s)
	}
	return domain.DiagnosticStatus(s), nil
}

func splitRate(arg string, domains []string) (string, int, error) {
	name, raw, ok := strings.Cut(arg, "=")
	if !ok {
		return "", 0, fmt.Errorf("invalid rating %q, expected domain=1-5", arg)
	}
	found := false
	for _, d := range domains {
		if d == name {
			found = true
			break
		}
	}
	if !found {
		return "", 0, fmt.Errorf("unknown domain %q (one of %s)", name, strings.Join(domains, ", "))
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 || value > 5 {
		return "", 0, fmt.Errorf("rating for %s must be 1-5, got %q", name, raw)
	}
	return name, value, nil
}

func splitLevel(arg string) (string, string, error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid level %q, expected domain=level", arg)
	}
	found := false
	for _, d := range domain.SocialDomains {
		if d == name {
			found = true
			break
		}
	}
	if !found {
		return "", "", fmt.Errorf("unknown domain %q (one of %s)", name, strings.Join(domain.SocialDomains, ", "))
	}
	valid := value == ""
	for _, lvl := range socialLevels {
		if lvl == value {
			valid = true
			break
		}
	}
	if !valid {
		return "", "", fmt.Errorf("level for %s must be one of %s", name, strings.Join(socialLevels, ", "))
	}
	return name, value, nil
}
