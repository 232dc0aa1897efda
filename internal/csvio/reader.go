// Package csvio loads delimited data files into tables and writes tables
// back out. Input has no header assumption: the first row is data until a
// profile says otherwise.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/csvtrim/csvtrim/internal/table"
)

// Read loads the file at path, dispatching on its extension. Anything that
// is not a workbook is read as CSV.
func Read(path string) (table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path, "")
	}
	return ReadCSV(path)
}

// ReadCSV loads a CSV file into a table.
func ReadCSV(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	t, err := ReadCSVFrom(f)
	if err != nil {
		return table.Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// ReadCSVFrom parses CSV data into a table. Rows may be ragged; the table is
// padded to the widest row with missing cells. An empty field becomes a
// missing value, and a column whose every present value parses as a number
// is read numerically.
func ReadCSVFrom(r io.Reader) (table.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return table.Table{}, fmt.Errorf("read csv row %d: %w", len(records)+1, err)
		}
		records = append(records, record)
	}
	return fromRecords(records), nil
}

// fromRecords builds a table from raw string records, applying the missing
// value and per-column numeric rules shared by every reader.
func fromRecords(records [][]string) table.Table {
	cols := 0
	for _, rec := range records {
		if len(rec) > cols {
			cols = len(rec)
		}
	}

	numeric := make([]bool, cols)
	for col := range numeric {
		numeric[col] = columnIsNumeric(records, col)
	}

	rows := make([]table.Row, len(records))
	for i, rec := range records {
		row := make(table.Row, cols)
		for j := 0; j < cols; j++ {
			switch {
			case j >= len(rec) || rec[j] == "":
				row[j] = table.MissingCell()
			case numeric[j]:
				n, _ := strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
				row[j] = table.NumberCell(n)
			default:
				row[j] = table.StringCell(rec[j])
			}
		}
		rows[i] = row
	}
	return table.FromRows(rows)
}

// columnIsNumeric reports whether every present value in the column parses
// as a finite number. One textual value keeps the whole column textual, so
// values like "007" survive verbatim in mixed columns.
func columnIsNumeric(records [][]string, col int) bool {
	seen := false
	for _, rec := range records {
		if col >= len(rec) || rec[col] == "" {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return false
		}
		seen = true
	}
	return seen
}
