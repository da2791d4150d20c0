package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caregrid/intake/internal/domain"
	"github.com/charmbracelet/huh"
)

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateEmail(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(s, "@") {
		return fmt.Errorf("%q does not look like an email address", s)
	}
	return nil
}

func validateRating(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 5 {
		return fmt.Errorf("rating must be 1-5")
	}
	return nil
}

// clinicianForm collects the fields that open a session.
func clinicianForm(info *domain.ClinicianInfo) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Clinician name").Value(&info.Name).Validate(validateRequired("name")),
			huh.NewInput().Title("Clinician email").Value(&info.Email).Validate(validateEmail),
			huh.NewInput().Title("Clinic").Value(&info.Clinic).Validate(validateRequired("clinic")),
		),
		huh.NewGroup(
			huh.NewInput().Title("Child name").Value(&info.ChildName),
			huh.NewInput().Title("Child age").Placeholder("4").Value(&info.ChildAge),
			huh.NewInput().Title("Child gender").Value(&info.ChildGender),
		),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}

func statusOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Not specified", string(domain.DiagNotSpecified)),
		huh.NewOption("Confirmed", string(domain.DiagConfirmed)),
		huh.NewOption("Suspected", string(domain.DiagSuspected)),
		huh.NewOption("Ruled out", string(domain.DiagRuledOut)),
	}
}

// overviewForm edits the status fields and the four summary texts in place.
func overviewForm(ov *overviewInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("ASC status").Options(statusOptions()...).Value(&ov.ASCStatus),
			huh.NewSelect[string]().Title("ADHD status").Options(statusOptions()...).Value(&ov.ADHDStatus),
			huh.NewMultiSelect[string]().Title("Referrals").Options(
				huh.NewOption("Speech & language therapy", "slt"),
				huh.NewOption("Occupational therapy", "ot"),
				huh.NewOption("Audiology", "audiology"),
				huh.NewOption("Vision", "vision"),
				huh.NewOption("Genetics", "genetics"),
				huh.NewOption("Other", "other"),
			).Value(&ov.Referrals),
		),
		huh.NewGroup(
			huh.NewText().Title("Clinical observations").Value(&ov.Observations),
			huh.NewText().Title("Strengths").Value(&ov.Strengths),
			huh.NewText().Title("Priority areas").Value(&ov.PriorityAreas),
			huh.NewText().Title("Recommendations").Value(&ov.Recommendations),
		),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}

// overviewInput is the form-side shape of the overview module.
type overviewInput struct {
	Observations    string
	Strengths       string
	PriorityAreas   string
	Recommendations string
	ASCStatus       string
	ADHDStatus      string
	Referrals       []string
}

func overviewInputFrom(ov domain.Overview) overviewInput {
	in := overviewInput{
		Observations:    ov.Observations,
		Strengths:       ov.Strengths,
		PriorityAreas:   ov.PriorityAreas,
		Recommendations: ov.Recommendations,
		ASCStatus:       string(ov.ASCStatus),
		ADHDStatus:      string(ov.ADHDStatus),
	}
	for flag, set := range map[string]bool{
		"slt": ov.Referrals.SpeechTherapy, "ot": ov.Referrals.OccupationalTherapy,
		"audiology": ov.Referrals.Audiology, "vision": ov.Referrals.Vision,
		"genetics": ov.Referrals.Genetics, "other": ov.Referrals.Other,
	} {
		if set {
			in.Referrals = append(in.Referrals, flag)
		}
	}
	return in
}

func (in overviewInput) toUpdate() domain.OverviewUpdate {
	asc := domain.DiagnosticStatus(in.ASCStatus)
	adhd := domain.DiagnosticStatus(in.ADHDStatus)
	refs := referralsFrom(in.Referrals)
	return domain.OverviewUpdate{
		Observations:    &in.Observations,
		Strengths:       &in.Strengths,
		PriorityAreas:   &in.PriorityAreas,
		Recommendations: &in.Recommendations,
		ASCStatus:       &asc,
		ADHDStatus:      &adhd,
		Referrals:       &refs,
	}
}

func referralsFrom(flags []string) domain.Referrals {
	var r domain.Referrals
	for _, f := range flags {
		switch f {
		case "slt":
			r.SpeechTherapy = true
		case "ot":
			r.OccupationalTherapy = true
		case "audiology":
			r.Audiology = true
		case "vision":
			r.Vision = true
		case "genetics":
			r.Genetics = true
		case "other":
			r.Other = true
		}
	}
	return r
}

// ratingsForm edits every domain rating of a rated module, plus notes.
func ratingsForm(title string, domains []string, values map[string]*string, notes *string) *huh.Form {
	fields := make([]huh.Field, 0, len(domains)+1)
	for _, d := range domains {
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("%s (1-5)", strings.ReplaceAll(d, "_", " "))).
			Value(values[d]).
			Validate(validateRating))
	}
	fields = append(fields, huh.NewText().Title("Notes").Value(notes))
	return huh.NewForm(
		huh.NewGroup(fields...).Title(title),
	).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}
