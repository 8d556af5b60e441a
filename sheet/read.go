package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"

	"tsg/techspec"
)

// Table is the content of generated sheet as read back from the workbook.
type Table struct {
	Header  [][2]string
	Columns []string
	// Rows are padded to the number of columns.
	Rows [][]string
}

// SpecRows converts data rows back to techspec rows.
func (t *Table) SpecRows() []techspec.Row {
	rows := make([]techspec.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, techspec.RowFromCells(r))
	}
	return rows
}

// Read loads table from the sheet of workbook at path.
func Read(path, sheet string) (t *Table, err error) {
	if len(sheet) == 0 {
		sheet = DefaultSheetName
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheet, err)
	}

	t = &Table{}
	for i := 0; i < headerRows && i < len(all); i++ {
		var pair [2]string
		copy(pair[:], all[i])
		t.Header = append(t.Header, pair)
	}
	if len(all) < columnsRow {
		return t, nil
	}
	t.Columns = all[columnsRow-1]
	for _, r := range all[columnsRow:] {
		t.Rows = append(t.Rows, pad(r, len(t.Columns)))
	}
	return t, nil
}

func pad(row []string, n int) []string {
	if len(row) >= n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}
