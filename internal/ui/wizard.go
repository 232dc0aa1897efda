package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/csvtrim/csvtrim/internal/profile"
)

// WizardOptions carries the raw answers of the profile creation wizard. The
// same struct backs the non-interactive `profiles create` flags, so both
// paths go through the same parsing and validation.
type WizardOptions struct {
	Name                string
	RemoveBlankRows     bool
	TrimPrefixes        string // comma-separated
	DeleteColumn        string
	FormatDatetime      string // blank means skip
	UseFirstRowAsHeader bool
}

// BuildWizardProfile turns raw wizard answers into a validated profile.
func BuildWizardProfile(opts WizardOptions) (string, profile.Profile, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return "", profile.Profile{}, fmt.Errorf("profile name is required")
	}

	p := profile.Profile{
		RemoveBlankRows:     opts.RemoveBlankRows,
		TrimPrefixes:        splitPrefixes(opts.TrimPrefixes),
		UseFirstRowAsHeader: opts.UseFirstRowAsHeader,
	}
	if sel := strings.TrimSpace(opts.DeleteColumn); sel != "" {
		p.DeleteColumn = profile.ParseColumnSelector(sel)
	}
	if raw := strings.TrimSpace(opts.FormatDatetime); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			return "", profile.Profile{}, fmt.Errorf("format_datetime must be a zero-based column index, got %q", raw)
		}
		p.FormatDatetime = &idx
	}

	if err := p.Validate(); err != nil {
		return "", profile.Profile{}, err
	}
	return name, p, nil
}

// splitPrefixes parses a comma-separated prefix list, dropping empty items
// so a trailing comma cannot smuggle in a trim-everything prefix.
func splitPrefixes(raw string) []string {
	var prefixes []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			prefixes = append(prefixes, part)
		}
	}
	return prefixes
}

// buildProfileForm builds the huh form behind the profile creation wizard.
// Answers land in opts.
func buildProfileForm(opts *WizardOptions) *huh.Form {
	nameGroup := huh.NewGroup(
		huh.NewInput().
			Title("Profile name").
			Description("Saved profiles can be reapplied across files and sessions.").
			Key("profile_name").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("a name is required")
				}
				return nil
			}).
			Value(&opts.Name),
	)

	stepsGroup := huh.NewGroup(
		huh.NewConfirm().
			Title("Remove blank rows?").
			Description("Drops rows where every cell is missing.").
			Key("remove_blank_rows").
			Value(&opts.RemoveBlankRows),
		huh.NewInput().
			Title("Trim prefixes (optional)").
			Description("Comma-separated; rows whose first column starts with any of these are dropped.").
			Key("trim_prefixes").
			Value(&opts.TrimPrefixes),
		huh.NewInput().
			Title("Delete column (optional)").
			Description("A 1-based column number or an exact column label.").
			Key("delete_column").
			Value(&opts.DeleteColumn),
		huh.NewInput().
			Title("Datetime column (optional)").
			Description("Zero-based index of a column to rewrite as YYYY-MM-DD HH:MM:SS; blank to skip.").
			Key("format_datetime").
			Validate(func(s string) error {
				s = strings.TrimSpace(s)
				if s == "" {
					return nil
				}
				n, err := strconv.Atoi(s)
				if err != nil || n < 0 {
					return fmt.Errorf("enter a zero-based column index")
				}
				return nil
			}).
			Value(&opts.FormatDatetime),
	)

	headerGroup := huh.NewGroup(
		huh.NewConfirm().
			Title("Use first row as header?").
			Description("When writing output, the first remaining row becomes the header line.").
			Key("use_first_row_as_header").
			Value(&opts.UseFirstRowAsHeader),
	)

	return huh.NewForm(nameGroup, stepsGroup, headerGroup)
}

// RunProfileWizard walks the user through creating a profile. The caller
// decides what to do with it (usually save it to the store). Aborting the
// form surfaces huh.ErrUserAborted.
func RunProfileWizard() (string, profile.Profile, error) {
	var opts WizardOptions
	if err := buildProfileForm(&opts).Run(); err != nil {
		return "", profile.Profile{}, err
	}
	return BuildWizardProfile(opts)
}
