// Package profile defines trimming profiles: named sets of row and column
// transformations that can be persisted and reapplied across files.
package profile

import (
	"encoding/json"
	"fmt"
)

// Profile is one named trimming configuration. Every field is optional; an
// unset field means the corresponding step is skipped.
type Profile struct {
	// RemoveBlankRows drops rows whose cells are all missing.
	RemoveBlankRows bool

	// TrimPrefixes drops rows whose first-column value starts with any of
	// these prefixes, in order. Rows with a missing first column survive.
	TrimPrefixes []string

	// DeleteColumn selects one column to remove, by 1-based position or by
	// label. The zero value selects nothing.
	DeleteColumn ColumnSelector

	// FormatDatetime is the zero-based index of a column whose values are
	// rewritten as "YYYY-MM-DD HH:MM:SS". Nil means skip; a pointer is used
	// so column zero is expressible.
	FormatDatetime *int

	// UseFirstRowAsHeader is consumed when writing output, not during
	// application: the first remaining row becomes the header line.
	UseFirstRowAsHeader bool
}

// profileWire is the stored shape of a profile. Only set fields are written,
// and unknown fields are ignored when reading.
type profileWire struct {
	RemoveBlankRows     bool     `json:"remove_blank_rows,omitempty"`
	TrimPrefixes        []string `json:"trim_prefixes,omitempty"`
	DeleteColumn        string   `json:"delete_column,omitempty"`
	FormatDatetime      *int     `json:"format_datetime,omitempty"`
	UseFirstRowAsHeader bool     `json:"use_first_row_as_header,omitempty"`
}

// MarshalJSON writes the profile in its stored shape.
func (p Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(profileWire{
		RemoveBlankRows:     p.RemoveBlankRows,
		TrimPrefixes:        p.TrimPrefixes,
		DeleteColumn:        p.DeleteColumn.String(),
		FormatDatetime:      p.FormatDatetime,
		UseFirstRowAsHeader: p.UseFirstRowAsHeader,
	})
}

// UnmarshalJSON reads the stored shape, deciding the column selector's
// interpretation here rather than on every application.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var w profileWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.RemoveBlankRows = w.RemoveBlankRows
	p.TrimPrefixes = w.TrimPrefixes
	p.DeleteColumn = ParseColumnSelector(w.DeleteColumn)
	p.FormatDatetime = w.FormatDatetime
	p.UseFirstRowAsHeader = w.UseFirstRowAsHeader
	return nil
}

// Validate checks the profile for values that could never apply cleanly.
func (p Profile) Validate() error {
	if p.FormatDatetime != nil && *p.FormatDatetime < 0 {
		return fmt.Errorf("format_datetime must be >= 0, got %d", *p.FormatDatetime)
	}
	for i, prefix := range p.TrimPrefixes {
		if prefix == "" {
			return fmt.Errorf("trim_prefixes[%d] is empty; an empty prefix would trim every row", i)
		}
	}
	return nil
}

// IsEmpty reports whether the profile requests no steps at all.
func (p Profile) IsEmpty() bool {
	return !p.RemoveBlankRows &&
		len(p.TrimPrefixes) == 0 &&
		p.DeleteColumn.IsZero() &&
		p.FormatDatetime == nil &&
		!p.UseFirstRowAsHeader
}

// Steps returns short descriptions of the steps the profile will run, in
// execution order. Used for listings and review screens.
func (p Profile) Steps() []string {
	var steps []string
	if p.RemoveBlankRows {
		steps = append(steps, "remove blank rows")
	}
	if len(p.TrimPrefixes) > 0 {
		steps = append(steps, fmt.Sprintf("trim rows by %d prefix(es)", len(p.TrimPrefixes)))
	}
	if idx, ok := p.DeleteColumn.Index(); ok {
		steps = append(steps, fmt.Sprintf("delete column %d", idx+1))
	} else if label, ok := p.DeleteColumn.Label(); ok {
		steps = append(steps, fmt.Sprintf("delete column %q", label))
	}
	if p.FormatDatetime != nil {
		steps = append(steps, fmt.Sprintf("format datetimes in column %d", *p.FormatDatetime))
	}
	if p.UseFirstRowAsHeader {
		steps = append(steps, "write first row as header")
	}
	return steps
}
