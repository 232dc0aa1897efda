package csvio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/csvtrim/csvtrim/internal/table"
)

// ReadXLSX loads one worksheet into a table using the same missing-value and
// numeric rules as the CSV reader. An empty sheet name selects the first
// sheet in the workbook.
func ReadXLSX(path, sheet string) (table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table.Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return table.Table{}, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return table.Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return fromRecords(records), nil
}
