package engine

// Report describes what one profile application did, step by step. The CLI
// renders it in the review panel and emits it as JSON when asked for a
// machine-readable account of a run.
type Report struct {
	Input      string       `json:"input,omitempty"`
	Profile    string       `json:"profile,omitempty"`
	RowsIn     int          `json:"rows_in"`
	ColumnsIn  int          `json:"columns_in"`
	RowsOut    int          `json:"rows_out"`
	ColumnsOut int          `json:"columns_out"`
	Steps      []StepReport `json:"steps"`
}

// StepReport records the effect of one executed step. Step holds the wire
// name of the step as it appears in a stored profile.
type StepReport struct {
	Step           string `json:"step"`
	RowsRemoved    int    `json:"rows_removed,omitempty"`
	ColumnDropped  string `json:"column_dropped,omitempty"`
	SkipReason     string `json:"skip_reason,omitempty"`
	CellsFormatted int    `json:"cells_formatted,omitempty"`
}

// Skipped reports whether the step resolved nothing to act on.
func (s StepReport) Skipped() bool {
	return s.SkipReason != ""
}
