package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/csvtrim/csvtrim/internal/table"
)

// WriteCSV writes the table to path. With promoteFirst set, the first data
// row becomes the header line and the remaining rows are written as data.
func WriteCSV(path string, t table.Table, promoteFirst bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteTo(f, t, promoteFirst); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteTo streams the table as CSV. A table already carrying column labels
// gets a header line; promoteFirst turns the first data row into that header
// first. Missing cells are written as empty fields.
func WriteTo(w io.Writer, t table.Table, promoteFirst bool) error {
	if promoteFirst {
		t = t.PromoteFirstRowToHeader()
	}

	cw := csv.NewWriter(w)
	if t.HasLabels() {
		if err := cw.Write(t.Labels()); err != nil {
			return err
		}
	}
	for _, r := range t.Rows() {
		record := make([]string, len(r))
		for i, c := range r {
			record[i] = c.Text()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// TableText renders the table exactly as WriteCSV would write it.
func TableText(t table.Table, promoteFirst bool) (string, error) {
	var buf strings.Builder
	if err := WriteTo(&buf, t, promoteFirst); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// OutputPath returns the destination for a trimmed copy of input: the base
// name with the prefix prepended. An empty dir keeps the input's directory.
func OutputPath(input, dir, prefix string) string {
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, prefix+filepath.Base(input))
}
