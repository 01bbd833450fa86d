package fundxml

import "fmt"

// Table is an ordered tabular extraction result. Headers keep the order the
// caller requested (duplicates allowed, never deduplicated) and every cell
// is a string; numeric or date interpretation is a separate stage.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates an empty table with the given column headers.
func NewTable(headers []string) *Table {
	h := make([]string, len(headers))
	copy(h, headers)
	return &Table{headers: h}
}

// Headers returns a copy of the column headers in order.
func (t *Table) Headers() []string {
	h := make([]string, len(t.headers))
	copy(h, t.headers)
	return h
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.headers) }

// Append adds one row. The number of cells must match the header count.
func (t *Table) Append(cells ...string) error {
	if len(cells) != len(t.headers) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.headers))
	}
	row := make([]string, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.rows[i]))
	copy(row, t.rows[i])
	return row
}

// Rows returns a copy of all rows in order.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.rows))
	for i := range t.rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Column returns a copy of the values under the first header equal to name.
// The second return is false if no such header exists.
func (t *Table) Column(name string) ([]string, bool) {
	for i, h := range t.headers {
		if h == name {
			col := make([]string, len(t.rows))
			for j, row := range t.rows {
				col[j] = row[i]
			}
			return col, true
		}
	}
	return nil, false
}
