package ui

import (
	"fmt"
	"strings"

	"github.com/csvtrim/csvtrim/internal/engine"
)

// RenderReviewScreen formats the review panel shown between applying a
// profile and writing the output: the equivalent command, the shape change,
// and what each step actually did.
func RenderReviewScreen(profileName string, report *engine.Report, command CommandSpec) string {
	lines := []string{
		"Review & Write",
		"Command:",
		"  " + FormatCommand(command.Args),
		"",
	}
	if profileName != "" {
		lines = append(lines, fmt.Sprintf("Profile: %s", profileName))
	}
	lines = append(lines, fmt.Sprintf("Shape: %d rows x %d columns -> %d rows x %d columns",
		report.RowsIn, report.ColumnsIn, report.RowsOut, report.ColumnsOut))

	lines = append(lines, "", "Steps:")
	if len(report.Steps) == 0 {
		lines = append(lines, "  (profile requested no steps)")
	}
	for _, step := range report.Steps {
		lines = append(lines, "  "+describeStep(step))
	}

	lines = append(lines, "", "Actions:", "[Write] [Copy Command] [Back]")
	return strings.Join(lines, "\n")
}

func describeStep(s engine.StepReport) string {
	switch s.Step {
	case engine.StepRemoveBlankRows:
		return fmt.Sprintf("- removed %d blank row(s)", s.RowsRemoved)
	case engine.StepTrimPrefixes:
		return fmt.Sprintf("- trimmed %d row(s) by prefix", s.RowsRemoved)
	case engine.StepDeleteColumn:
		if s.Skipped() {
			return fmt.Sprintf("- delete_column skipped: %s", s.SkipReason)
		}
		return fmt.Sprintf("- dropped column %s", s.ColumnDropped)
	case engine.StepFormatDatetime:
		return fmt.Sprintf("- reformatted %d datetime cell(s)", s.CellsFormatted)
	default:
		return fmt.Sprintf("- %s", s.Step)
	}
}
