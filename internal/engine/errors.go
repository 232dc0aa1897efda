package engine

import "fmt"

// ConfigError reports a requested step that cannot be meaningfully executed
// against the table's current shape.
type ConfigError struct {
	Step   string
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Reason)
}

// ParseError reports a cell whose value could not be parsed as a date-time.
// Row is the zero-based position of the offending row at the time the
// formatting step ran.
type ParseError struct {
	Row   int
	Value string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %q as a date-time", e.Row, e.Value)
}
