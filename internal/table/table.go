// Package table holds tabular data in memory and provides the primitive
// operations profile steps are built from: row filtering, positional column
// access, column removal, and header promotion.
package table

import (
	"fmt"
	"strconv"
)

// CellKind identifies what a cell holds.
type CellKind int

const (
	CellMissing CellKind = iota
	CellString
	CellNumber
)

// Cell is a single table value. A missing cell is distinct from a cell
// holding an empty string.
type Cell struct {
	kind CellKind
	str  string
	num  float64
}

// MissingCell returns a cell with no value.
func MissingCell() Cell {
	return Cell{kind: CellMissing}
}

// StringCell returns a cell holding a string value.
func StringCell(s string) Cell {
	return Cell{kind: CellString, str: s}
}

// NumberCell returns a cell holding a numeric value.
func NumberCell(n float64) Cell {
	return Cell{kind: CellNumber, num: n}
}

// Kind returns the cell's kind.
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsMissing reports whether the cell has no value.
func (c Cell) IsMissing() bool {
	return c.kind == CellMissing
}

// Number returns the numeric value and whether the cell holds one.
func (c Cell) Number() (float64, bool) {
	return c.num, c.kind == CellNumber
}

// Text returns the cell rendered as a string. Missing cells render as the
// empty string; numbers render without a trailing ".0" when integral.
func (c Cell) Text() string {
	switch c.kind {
	case CellString:
		return c.str
	case CellNumber:
		return formatNumber(c.num)
	default:
		return ""
	}
}

// Row is one ordered line of cells.
type Row []Cell

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Table is an ordered rectangular grid. Columns are positional; labels are
// optional and only present after PromoteFirstRowToHeader. The column count
// is tracked explicitly so a zero-row table still has a shape.
type Table struct {
	cols   int
	labels []string
	rows   []Row
}

// New returns an empty table with the given column count.
func New(cols int) Table {
	if cols < 0 {
		cols = 0
	}
	return Table{cols: cols}
}

// FromRows builds a table whose width is the widest row. Shorter rows are
// padded with missing cells so the result is rectangular.
func FromRows(rows []Row) Table {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		row := make(Row, cols)
		copy(row, r)
		for j := len(r); j < cols; j++ {
			row[j] = MissingCell()
		}
		out[i] = row
	}
	return Table{cols: cols, rows: out}
}

// Columns returns the current column count.
func (t Table) Columns() int {
	return t.cols
}

// RowCount returns the number of data rows.
func (t Table) RowCount() int {
	return len(t.rows)
}

// Rows returns the data rows. Callers must not modify the returned slice.
func (t Table) Rows() []Row {
	return t.rows
}

// Row returns the row at the given position.
func (t Table) Row(i int) Row {
	return t.rows[i]
}

// At returns the cell at the given row and column.
func (t Table) At(row, col int) Cell {
	return t.rows[row][col]
}

// Labels returns the column labels, or nil when the table has none.
func (t Table) Labels() []string {
	return t.labels
}

// HasLabels reports whether column labels have been set.
func (t Table) HasLabels() bool {
	return t.labels != nil
}

// LabelIndex returns the position of the column with the given label,
// matched by exact string equality.
func (t Table) LabelIndex(label string) (int, bool) {
	for i, l := range t.labels {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

// WithLabels returns a copy of the table carrying the given labels.
func (t Table) WithLabels(labels []string) Table {
	out := t
	out.labels = append([]string(nil), labels...)
	return out
}

// FilterRows returns a table containing only the rows the predicate accepts,
// preserving their relative order. The receiver is not modified.
func (t Table) FilterRows(pred func(Row) bool) Table {
	kept := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		if pred(r) {
			kept = append(kept, r)
		}
	}
	return Table{cols: t.cols, labels: t.labels, rows: kept}
}

// ColumnValues returns the cells at the given positional index across all
// rows, in row order.
func (t Table) ColumnValues(idx int) ([]Cell, error) {
	if idx < 0 || idx >= t.cols {
		return nil, OutOfRangeError{Index: idx, Columns: t.cols}
	}
	vals := make([]Cell, len(t.rows))
	for i, r := range t.rows {
		vals[i] = r[idx]
	}
	return vals, nil
}

// DropColumn returns a table with the column at idx removed from every row
// and from the labels. Columns after idx shift down by one.
func (t Table) DropColumn(idx int) (Table, error) {
	if idx < 0 || idx >= t.cols {
		return Table{}, OutOfRangeError{Index: idx, Columns: t.cols}
	}
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		row := make(Row, 0, t.cols-1)
		row = append(row, r[:idx]...)
		row = append(row, r[idx+1:]...)
		rows[i] = row
	}
	var labels []string
	if t.labels != nil {
		labels = make([]string, 0, len(t.labels)-1)
		labels = append(labels, t.labels[:idx]...)
		labels = append(labels, t.labels[idx+1:]...)
	}
	return Table{cols: t.cols - 1, labels: labels, rows: rows}, nil
}

// PromoteFirstRowToHeader returns a table whose labels are the first row's
// values rendered as strings, with the remaining rows as data. An empty
// table is returned unchanged.
func (t Table) PromoteFirstRowToHeader() Table {
	if len(t.rows) == 0 {
		return t
	}
	labels := make([]string, t.cols)
	for i, c := range t.rows[0] {
		labels[i] = c.Text()
	}
	return Table{cols: t.cols, labels: labels, rows: t.rows[1:]}
}

// CloneRows returns a table whose rows are deep copies of the receiver's,
// so cells can be rewritten without aliasing the original.
func (t Table) CloneRows() Table {
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r.Clone()
	}
	return Table{cols: t.cols, labels: t.labels, rows: rows}
}

// SetCell overwrites the cell at the given row and column.
func (t *Table) SetCell(row, col int, c Cell) error {
	if col < 0 || col >= t.cols {
		return OutOfRangeError{Index: col, Columns: t.cols}
	}
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("row index %d out of range for table with %d rows", row, len(t.rows))
	}
	t.rows[row][col] = c
	return nil
}

// formatNumber renders in the shortest plain-decimal form: integral values
// have no decimal point, so "1" round-trips as "1".
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

