package table

import "fmt"

// OutOfRangeError reports a positional column reference beyond the table's
// current column count.
type OutOfRangeError struct {
	Index   int
	Columns int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("column index %d out of range for table with %d columns", e.Index, e.Columns)
}
