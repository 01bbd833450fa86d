package fundxml

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the table as a single-sheet spreadsheet at path.
func (t *Table) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := setRow(f, sheet, 1, t.headers); err != nil {
		return err
	}
	for i, row := range t.rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", rowNum, err)
	}
	return nil
}
