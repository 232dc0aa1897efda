package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/csvtrim/csvtrim/internal/table"
)

func TestReadCSVFromBasic(t *testing.T) {
	tbl := mustReadString(t, "a,b\nc,d\n")
	if tbl.RowCount() != 2 || tbl.Columns() != 2 {
		t.Fatalf("expected 2x2 table, got %dx%d", tbl.RowCount(), tbl.Columns())
	}
	if got := tbl.At(1, 0).Text(); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
	if tbl.HasLabels() {
		t.Fatal("expected no labels: the first row is data")
	}
}

func TestReadCSVFromEmptyFieldIsMissing(t *testing.T) {
	tbl := mustReadString(t, "a,,c\n")
	if !tbl.At(0, 1).IsMissing() {
		t.Fatal("expected empty field to read as missing")
	}
	if tbl.At(0, 0).IsMissing() || tbl.At(0, 2).IsMissing() {
		t.Fatal("expected non-empty fields to be present")
	}
}

func TestReadCSVFromNumericColumn(t *testing.T) {
	tbl := mustReadString(t, "1,x\n2.5,y\n,z\n")
	n, ok := tbl.At(0, 0).Number()
	if !ok || n != 1 {
		t.Fatalf("expected numeric 1, got %v", tbl.At(0, 0))
	}
	n, ok = tbl.At(1, 0).Number()
	if !ok || n != 2.5 {
		t.Fatalf("expected numeric 2.5, got %v", tbl.At(1, 0))
	}
	// Missing values do not break a column's numeric reading.
	if !tbl.At(2, 0).IsMissing() {
		t.Fatal("expected missing cell")
	}
	if tbl.At(0, 1).Kind() != table.CellString {
		t.Fatal("expected second column to stay textual")
	}
}

func TestReadCSVFromMixedColumnStaysTextual(t *testing.T) {
	tbl := mustReadString(t, "007,1\nabc,2\n")
	if got := tbl.At(0, 0).Text(); got != "007" {
		t.Fatalf("expected leading zeros kept, got %q", got)
	}
	if tbl.At(0, 0).Kind() != table.CellString {
		t.Fatal("expected textual cell in mixed column")
	}
	if tbl.At(0, 1).Kind() != table.CellNumber {
		t.Fatal("expected all-numeric column to read numerically")
	}
}

func TestReadCSVFromRaggedRows(t *testing.T) {
	tbl := mustReadString(t, "a,b,c\nd\n")
	if tbl.Columns() != 3 {
		t.Fatalf("expected widest row to set the width, got %d", tbl.Columns())
	}
	if !tbl.At(1, 1).IsMissing() || !tbl.At(1, 2).IsMissing() {
		t.Fatal("expected short row padded with missing cells")
	}
}

func TestReadCSVFromQuotedFields(t *testing.T) {
	tbl := mustReadString(t, "\"a,b\",c\n")
	if tbl.Columns() != 2 {
		t.Fatalf("expected 2 columns, got %d", tbl.Columns())
	}
	if got := tbl.At(0, 0).Text(); got != "a,b" {
		t.Fatalf("expected quoted comma kept, got %q", got)
	}
}

func TestReadCSVFromEmptyInput(t *testing.T) {
	tbl := mustReadString(t, "")
	if tbl.RowCount() != 0 || tbl.Columns() != 0 {
		t.Fatalf("expected empty table, got %dx%d", tbl.RowCount(), tbl.Columns())
	}
}

func TestReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("x,y\n1,2\n"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tbl, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.RowCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.RowCount())
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	if _, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func mustReadString(t *testing.T, data string) table.Table {
	t.Helper()
	tbl, err := ReadCSVFrom(strings.NewReader(data))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return tbl
}
