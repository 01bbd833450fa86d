// Package transform provides typed views over extracted tables. Extraction
// keeps every cell as a string; coercion to numbers or dates is a separate,
// caller-driven stage and failures here never affect the table itself.
package transform

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgallion1/fundxml"
	"github.com/shopspring/decimal"
)

// DateLayout is the day format position files carry (yyyymmdd).
const DateLayout = "20060102"

// Decimals parses the named column as decimal numbers. Empty cells produce
// invalid NullDecimals rather than zero, so "missing" stays distinguishable
// from "0". A non-empty cell that does not parse is an error naming the
// column and row.
func Decimals(t *fundxml.Table, column string) ([]decimal.NullDecimal, error) {
	col, ok := t.Column(column)
	if !ok {
		return nil, fmt.Errorf("no column %q", column)
	}
	out := make([]decimal.NullDecimal, len(col))
	for i, cell := range col {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(cell))
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", column, i, err)
		}
		out[i] = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	return out, nil
}

// Dates parses the named column with the given layout (DateLayout for
// standard position files). Empty cells produce zero times.
func Dates(t *fundxml.Table, column, layout string) ([]time.Time, error) {
	col, ok := t.Column(column)
	if !ok {
		return nil, fmt.Errorf("no column %q", column)
	}
	out := make([]time.Time, len(col))
	for i, cell := range col {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		d, err := time.Parse(layout, cell)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", column, i, err)
		}
		out[i] = d
	}
	return out, nil
}
