package table

import (
	"errors"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// ReadXLSX reads a sheet of an Excel workbook into a table.
// An empty sheet name selects the first sheet.
func ReadXLSX(path, sheet string, opts ImportOptions) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyInput
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return fromStrings(rows, opts)
}

// WriteXLSX writes the table to a new workbook with a header row.
// An empty sheet name uses "Sheet1". Missing values leave the cell blank.
func (t *Table) WriteXLSX(path, sheet string) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
			return fmt.Errorf("naming sheet: %w", err)
		}
	}

	for c, name := range t.names {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for c, col := range t.cols {
		for r, v := range col {
			if IsMissing(v) {
				continue
			}
			if x, ok := v.(float64); ok && math.IsInf(x, 0) {
				v = FormatValue(x)
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
