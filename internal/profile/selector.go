package profile

import (
	"strconv"
	"strings"
)

// SelectorKind distinguishes how a column selector identifies its column.
type SelectorKind int

const (
	SelectorNone SelectorKind = iota
	SelectorIndex
	SelectorLabel
)

// ColumnSelector identifies a column either by position or by label. The
// decision between the two is made once, when the selector is parsed, so
// profile application never re-interprets the raw text.
type ColumnSelector struct {
	raw   string
	kind  SelectorKind
	index int
	label string
}

// ParseColumnSelector interprets a raw delete_column value. Text that parses
// as a positive integer is a 1-based positional index into the column set at
// the time the step runs; anything else is an exact column label. Zero and
// negative numbers are labels, so they can never silently pick a column the
// author did not mean.
func ParseColumnSelector(raw string) ColumnSelector {
	if raw == "" {
		return ColumnSelector{}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
		return ColumnSelector{raw: raw, kind: SelectorIndex, index: n - 1}
	}
	return ColumnSelector{raw: raw, kind: SelectorLabel, label: raw}
}

// ByIndex returns a selector for a 1-based positional index.
func ByIndex(oneBased int) ColumnSelector {
	return ColumnSelector{
		raw:   strconv.Itoa(oneBased),
		kind:  SelectorIndex,
		index: oneBased - 1,
	}
}

// ByLabel returns a selector matching a column label exactly.
func ByLabel(label string) ColumnSelector {
	return ColumnSelector{raw: label, kind: SelectorLabel, label: label}
}

// Kind returns how the selector identifies its column.
func (s ColumnSelector) Kind() SelectorKind {
	return s.kind
}

// IsZero reports whether no column is selected.
func (s ColumnSelector) IsZero() bool {
	return s.kind == SelectorNone
}

// Index returns the zero-based column index and whether the selector is
// positional.
func (s ColumnSelector) Index() (int, bool) {
	return s.index, s.kind == SelectorIndex
}

// Label returns the column label and whether the selector matches by label.
func (s ColumnSelector) Label() (string, bool) {
	return s.label, s.kind == SelectorLabel
}

// String returns the raw selector text as it appears in a stored profile.
func (s ColumnSelector) String() string {
	return s.raw
}
