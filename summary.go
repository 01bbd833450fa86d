package fundxml

import (
	"fmt"
	"strings"
)

// ColumnSummary describes one column of an extracted table.
type ColumnSummary struct {
	Name     string `json:"name"`
	NonEmpty int    `json:"non_empty"`
	Distinct int    `json:"distinct"`
}

// Summary is a read-only overview of a table: row count plus per-column
// non-empty and distinct counts. Distinct counts ignore empty cells.
type Summary struct {
	Rows    int             `json:"rows"`
	Columns []ColumnSummary `json:"columns"`
}

// Summarize reports the table's shape and per-column fill. It never
// modifies the table.
func (t *Table) Summarize() Summary {
	s := Summary{
		Rows:    len(t.rows),
		Columns: make([]ColumnSummary, len(t.headers)),
	}
	for i, h := range t.headers {
		seen := make(map[string]struct{})
		nonEmpty := 0
		for _, row := range t.rows {
			if row[i] == "" {
				continue
			}
			nonEmpty++
			seen[row[i]] = struct{}{}
		}
		s.Columns[i] = ColumnSummary{Name: h, NonEmpty: nonEmpty, Distinct: len(seen)}
	}
	return s
}

// String renders the summary for terminal output.
func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d rows x %d columns\n", s.Rows, len(s.Columns))
	for _, c := range s.Columns {
		fmt.Fprintf(&sb, "  %s: %d non-empty, %d distinct\n", c.Name, c.NonEmpty, c.Distinct)
	}
	return sb.String()
}
