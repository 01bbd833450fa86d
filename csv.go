package fundxml

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// utf8BOM marks CSV files so spreadsheet applications pick up the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the table to w: header row first, then data rows.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range t.rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to a CSV file at path. With bom set, the
// file is prefixed with a UTF-8 byte order mark.
func (t *Table) WriteCSVFile(path string, bom bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if bom {
		if _, err := f.Write(utf8BOM); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
