package sheet

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"tsg/techspec"
)

const (
	// DefaultSheetName is the name of the first sheet of a new workbook.
	DefaultSheetName = "Sheet1"

	headerRows   = 3
	columnsRow   = headerRows + 1
	firstDataRow = columnsRow + 1
)

// Options controls workbook generation.
type Options struct {
	SheetName string
}

func (o Options) sheetName() string {
	if len(o.SheetName) == 0 {
		return DefaultSheetName
	}
	return o.SheetName
}

// Write creates workbook at path (overwriting existing file) with module
// header followed by the rows table, then re-opens it and makes header
// block bold.
func Write(ctx context.Context, path string, header techspec.ModuleHeader, rows []techspec.Row, opts Options, log *zap.Logger) error {
	sheet := opts.sheetName()

	if err := writeTable(path, sheet, header, rows); err != nil {
		return fmt.Errorf("unable to write workbook: %w", err)
	}
	log.Debug("Workbook written", zap.String("file", path), zap.String("sheet", sheet), zap.Int("rows", len(rows)))

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := boldHeader(path, sheet); err != nil {
		return fmt.Errorf("unable to style workbook header: %w", err)
	}
	log.Debug("Workbook header styled", zap.String("range", headerRange()))
	return nil
}

func writeTable(path, sheet string, header techspec.ModuleHeader, rows []techspec.Row) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if name := f.GetSheetName(0); name != sheet {
		if err := f.SetSheetName(name, sheet); err != nil {
			return err
		}
	}

	for i, pair := range header.Pairs() {
		if err := setRow(f, sheet, i+1, pair[:]); err != nil {
			return err
		}
	}
	if err := setRow(f, sheet, columnsRow, techspec.Columns); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, firstDataRow+i, row.Cells()); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// setRow puts non-empty values into consecutive cells of the row starting
// from column A.
func setRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		if len(v) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func boldHeader(path, sheet string) (err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	first, last := headerCorners()
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return err
	}
	return f.Save()
}

// headerCorners returns top-left and bottom-right cells of header block,
// which spans all table columns.
func headerCorners() (string, string) {
	last, _ := excelize.CoordinatesToCellName(len(techspec.Columns), headerRows)
	return "A1", last
}

func headerRange() string {
	first, last := headerCorners()
	return first + ":" + last
}
