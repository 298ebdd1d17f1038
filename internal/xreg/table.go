// Package xreg provides the exogenous-regressor table that accompanies a
// series through a rolling-origin evaluation. Row i of a table corresponds to
// the same time index as series position i; slicing keeps that alignment.
package xreg

import (
	"fmt"

	"github.com/rollcv/rollcv/internal/timeseries"
)

// Table is a 2-D numeric table with named columns and one row per time index.
type Table struct {
	names []string
	rows  [][]float64
}

// New validates the shape of rows and wraps them in a Table. Every row must
// have exactly one value per column name.
func New(names []string, rows [][]float64) (*Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("regressor table needs at least one column")
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("regressor column names must be non-empty")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate regressor column %q", name)
		}
		seen[name] = true
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("regressor row %d has %d values, want %d", i, len(row), len(names))
		}
	}
	return &Table{names: names, rows: rows}, nil
}

// Names returns the column names.
func (t *Table) Names() []string {
	return t.names
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.names)
}

// Row returns row i.
func (t *Table) Row(i int) []float64 {
	return t.rows[i]
}

// Slice returns the half-open row range [start, end) as a new table sharing
// the underlying rows.
func (t *Table) Slice(start, end int) (*Table, error) {
	if start < 0 || end > len(t.rows) || start > end {
		return nil, fmt.Errorf("row range [%d, %d) out of range for table with %d rows", start, end, len(t.rows))
	}
	return &Table{names: t.names, rows: t.rows[start:end]}, nil
}

// Extend returns a table padded with missing-value rows up to numRows. When
// the table already has at least numRows rows it is returned unchanged.
func (t *Table) Extend(numRows int) *Table {
	if len(t.rows) >= numRows {
		return t
	}
	rows := make([][]float64, numRows)
	copy(rows, t.rows)
	for i := len(t.rows); i < numRows; i++ {
		row := make([]float64, len(t.names))
		for j := range row {
			row[j] = timeseries.Missing
		}
		rows[i] = row
	}
	return &Table{names: t.names, rows: rows}
}

// HasMissing reports whether any cell in the half-open row range [start, end)
// holds the missing-value marker.
func (t *Table) HasMissing(start, end int) bool {
	for i := start; i < end && i < len(t.rows); i++ {
		for _, v := range t.rows[i] {
			if timeseries.IsMissing(v) {
				return true
			}
		}
	}
	return false
}
