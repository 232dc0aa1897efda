// Package engine applies trimming profiles to tables. The four steps run in
// a fixed order so that positional references in later steps resolve against
// the already-filtered row and column set.
package engine

import (
	"fmt"
	"strings"

	"github.com/csvtrim/csvtrim/internal/profile"
	"github.com/csvtrim/csvtrim/internal/table"
)

// Step wire names, shared with the profile schema and the run report.
const (
	StepRemoveBlankRows = "remove_blank_rows"
	StepTrimPrefixes    = "trim_prefixes"
	StepDeleteColumn    = "delete_column"
	StepFormatDatetime  = "format_datetime"
)

// Options tune a single profile application.
type Options struct {
	// DatetimeLayouts overrides the input layouts tried by the datetime
	// step. Nil means DefaultDatetimeLayouts.
	DatetimeLayouts []string
}

// Apply runs every configured step of the profile against the table, in
// order, and returns the transformed result. The input table is left intact,
// and no partially transformed table is returned on failure.
func Apply(t table.Table, p profile.Profile) (table.Table, error) {
	out, _, err := ApplyWithOptions(t, p, Options{})
	return out, err
}

// ApplyWithOptions is Apply with tuning options and a step-by-step report of
// what each configured step did.
func ApplyWithOptions(t table.Table, p profile.Profile, opts Options) (table.Table, *Report, error) {
	report := &Report{RowsIn: t.RowCount(), ColumnsIn: t.Columns()}

	if p.RemoveBlankRows {
		before := t.RowCount()
		t = removeBlankRows(t)
		report.Steps = append(report.Steps, StepReport{
			Step:        StepRemoveBlankRows,
			RowsRemoved: before - t.RowCount(),
		})
	}

	if len(p.TrimPrefixes) > 0 {
		before := t.RowCount()
		trimmed, err := trimPrefixes(t, p.TrimPrefixes)
		if err != nil {
			return table.Table{}, nil, err
		}
		t = trimmed
		report.Steps = append(report.Steps, StepReport{
			Step:        StepTrimPrefixes,
			RowsRemoved: before - t.RowCount(),
		})
	}

	if !p.DeleteColumn.IsZero() {
		dropped, step := deleteColumn(t, p.DeleteColumn)
		t = dropped
		report.Steps = append(report.Steps, step)
	}

	if p.FormatDatetime != nil {
		layouts := opts.DatetimeLayouts
		if layouts == nil {
			layouts = DefaultDatetimeLayouts
		}
		formatted, cells, err := formatDatetime(t, *p.FormatDatetime, layouts)
		if err != nil {
			return table.Table{}, nil, err
		}
		t = formatted
		report.Steps = append(report.Steps, StepReport{
			Step:           StepFormatDatetime,
			CellsFormatted: cells,
		})
	}

	report.RowsOut = t.RowCount()
	report.ColumnsOut = t.Columns()
	return t, report, nil
}

// removeBlankRows drops rows whose cells are all missing. A cell holding an
// empty string is not missing, so its row survives.
func removeBlankRows(t table.Table) table.Table {
	return t.FilterRows(func(r table.Row) bool {
		for _, c := range r {
			if !c.IsMissing() {
				return true
			}
		}
		return false
	})
}

// trimPrefixes drops rows whose first-column text starts with any of the
// prefixes. A missing first column never matches, so those rows survive. A
// table with no columns has nothing for the requested step to inspect and is
// a configuration error rather than a silent no-op.
func trimPrefixes(t table.Table, prefixes []string) (table.Table, error) {
	if t.Columns() == 0 {
		return table.Table{}, ConfigError{Step: StepTrimPrefixes, Reason: "no column to trim on"}
	}
	return t.FilterRows(func(r table.Row) bool {
		first := r[0]
		if first.IsMissing() {
			return true
		}
		text := first.Text()
		for _, prefix := range prefixes {
			if strings.HasPrefix(text, prefix) {
				return false
			}
		}
		return true
	}), nil
}

// deleteColumn resolves the selector against the current column set and
// drops the matched column. A selector that resolves to nothing skips the
// step: profiles are routinely applied to files shaped differently from the
// one they were authored against.
func deleteColumn(t table.Table, sel profile.ColumnSelector) (table.Table, StepReport) {
	step := StepReport{Step: StepDeleteColumn}

	idx := -1
	switch sel.Kind() {
	case profile.SelectorIndex:
		n, _ := sel.Index()
		if n < t.Columns() {
			idx = n
		} else {
			step.SkipReason = fmt.Sprintf("index %s is beyond the last column", sel.String())
		}
	case profile.SelectorLabel:
		label, _ := sel.Label()
		if i, ok := t.LabelIndex(label); ok {
			idx = i
		} else {
			step.SkipReason = fmt.Sprintf("no column labeled %q", label)
		}
	}
	if idx < 0 {
		return t, step
	}

	dropped, err := t.DropColumn(idx)
	if err != nil {
		step.SkipReason = err.Error()
		return t, step
	}
	step.ColumnDropped = sel.String()
	return dropped, step
}

// formatDatetime parses every value in the column and rewrites it in the
// fixed YYYY-MM-DD HH:MM:SS form. Missing cells stay missing. An
// out-of-range index or an unparseable value fails the whole application
// with nothing rewritten.
func formatDatetime(t table.Table, col int, layouts []string) (table.Table, int, error) {
	cells, err := t.ColumnValues(col)
	if err != nil {
		return table.Table{}, 0, err
	}

	out := t.CloneRows()
	formatted := 0
	for i, c := range cells {
		if c.IsMissing() {
			continue
		}
		ts, ok := parseDatetime(c.Text(), layouts)
		if !ok {
			return table.Table{}, 0, ParseError{Row: i, Value: c.Text()}
		}
		if err := out.SetCell(i, col, table.StringCell(ts.Format(datetimeLayout))); err != nil {
			return table.Table{}, 0, err
		}
		formatted++
	}
	return out, formatted, nil
}
