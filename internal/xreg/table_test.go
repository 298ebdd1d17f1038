package xreg

import (
	"testing"

	"github.com/rollcv/rollcv/internal/timeseries"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		rows  [][]float64
	}{
		{name: "no columns", names: nil, rows: [][]float64{{1}}},
		{name: "empty column name", names: []string{""}, rows: [][]float64{{1}}},
		{name: "duplicate column", names: []string{"a", "a"}, rows: [][]float64{{1, 2}}},
		{name: "ragged row", names: []string{"a", "b"}, rows: [][]float64{{1, 2}, {3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.names, tt.rows); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestNew_Valid(t *testing.T) {
	table, err := New([]string{"a", "b"}, [][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if table.NumRows() != 2 || table.NumCols() != 2 {
		t.Errorf("Expected 2x2 table, got %dx%d", table.NumRows(), table.NumCols())
	}
	if table.Row(1)[0] != 3 {
		t.Errorf("Expected row 1 to start with 3, got %v", table.Row(1))
	}
}

func TestSlice(t *testing.T) {
	table, _ := New([]string{"a"}, [][]float64{{1}, {2}, {3}, {4}})

	sliced, err := table.Slice(1, 3)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if sliced.NumRows() != 2 || sliced.Row(0)[0] != 2 {
		t.Errorf("Expected rows [2 3], got %d rows starting %v", sliced.NumRows(), sliced.Row(0))
	}

	if _, err := table.Slice(2, 5); err == nil {
		t.Error("Expected error for out-of-range slice")
	}
}

func TestExtend_PadsWithMissing(t *testing.T) {
	table, _ := New([]string{"a", "b"}, [][]float64{{1, 2}})

	padded := table.Extend(3)
	if padded.NumRows() != 3 {
		t.Fatalf("Expected 3 rows after extend, got %d", padded.NumRows())
	}
	for i := 1; i < 3; i++ {
		for _, v := range padded.Row(i) {
			if !timeseries.IsMissing(v) {
				t.Errorf("Expected padded row %d to be missing, got %v", i, padded.Row(i))
			}
		}
	}

	// Already long enough: unchanged.
	same := padded.Extend(2)
	if same.NumRows() != 3 {
		t.Errorf("Expected extend to be a no-op, got %d rows", same.NumRows())
	}
}

func TestHasMissing(t *testing.T) {
	table, _ := New([]string{"a"}, [][]float64{{1}, {timeseries.Missing}, {3}})

	if table.HasMissing(0, 1) {
		t.Error("Did not expect missing in [0, 1)")
	}
	if !table.HasMissing(0, 3) {
		t.Error("Expected missing in [0, 3)")
	}
	if table.HasMissing(2, 10) {
		t.Error("Range past the table should only inspect stored rows")
	}
}
