package crossval

import "github.com/rollcv/rollcv/internal/timeseries"

// Matrix is a dense row-major float64 matrix. Missing cells hold the
// missing-value marker.
type Matrix [][]float64

// newMatrix allocates a rows x cols matrix filled with the missing marker.
func newMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		row := make([]float64, cols)
		for j := range row {
			row[j] = timeseries.Missing
		}
		m[i] = row
	}
	return m
}

// NumRows returns the number of rows.
func (m Matrix) NumRows() int {
	return len(m)
}

// NumCols returns the number of columns (0 for an empty matrix).
func (m Matrix) NumCols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) []float64 {
	col := make([]float64, len(m))
	for i, row := range m {
		col[i] = row[j]
	}
	return col
}
