package crossval

import (
	"testing"

	"github.com/rollcv/rollcv/internal/timeseries"
)

func countingSeries(n, frequency int) *timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	return timeseries.New(values, frequency)
}

func TestPlanOrigins_Count(t *testing.T) {
	s := countingSeries(20, 1)
	ctrl := Control{StepSize: 1, MaxHorizon: 3, MinObs: 12, FixedWindow: true}.withDefaults()

	plans, err := planOrigins(s, ctrl)
	if err != nil {
		t.Fatalf("planOrigins failed: %v", err)
	}

	if len(plans) != 8 {
		t.Fatalf("Expected 8 origins for n=20, minObs=12, step=1, got %d", len(plans))
	}
	for i, p := range plans {
		if p.Origin != i+1 {
			t.Errorf("Expected origin %d at position %d, got %d", i+1, i, p.Origin)
		}
	}
}

func TestPlanOrigins_StepSpacing(t *testing.T) {
	s := countingSeries(20, 1)

	tests := []struct {
		step    int
		origins []int
	}{
		{step: 2, origins: []int{1, 3, 5, 7}},
		{step: 3, origins: []int{1, 4, 7}},
		{step: 8, origins: []int{1}},
	}

	for _, tt := range tests {
		ctrl := Control{StepSize: tt.step, MaxHorizon: 1, MinObs: 12, FixedWindow: true}.withDefaults()
		plans, err := planOrigins(s, ctrl)
		if err != nil {
			t.Fatalf("planOrigins failed for step %d: %v", tt.step, err)
		}
		got := origins(plans)
		if len(got) != len(tt.origins) {
			t.Fatalf("step %d: expected %d origins, got %d", tt.step, len(tt.origins), len(got))
		}
		for i := range got {
			if got[i] != tt.origins[i] {
				t.Errorf("step %d: expected origin %d at position %d, got %d", tt.step, tt.origins[i], i, got[i])
			}
		}
	}
}

func TestPlanOrigins_FixedWindowBounds(t *testing.T) {
	s := countingSeries(20, 1)
	ctrl := Control{StepSize: 1, MaxHorizon: 1, MinObs: 12, FixedWindow: true}.withDefaults()

	plans, err := planOrigins(s, ctrl)
	if err != nil {
		t.Fatalf("planOrigins failed: %v", err)
	}

	for _, p := range plans {
		if p.TrainStart != p.Origin-1 {
			t.Errorf("origin %d: expected train start %d, got %d", p.Origin, p.Origin-1, p.TrainStart)
		}
		if p.TrainEnd != 12+p.Origin-1 {
			t.Errorf("origin %d: expected train end %d, got %d", p.Origin, 12+p.Origin-1, p.TrainEnd)
		}
		if p.TrainEnd-p.TrainStart != 12 {
			t.Errorf("origin %d: fixed window should span 12 observations, got %d", p.Origin, p.TrainEnd-p.TrainStart)
		}
	}
}

func TestPlanOrigins_ExpandingWindowBounds(t *testing.T) {
	s := countingSeries(20, 1)
	ctrl := Control{StepSize: 1, MaxHorizon: 1, MinObs: 12, FixedWindow: false}.withDefaults()

	plans, err := planOrigins(s, ctrl)
	if err != nil {
		t.Fatalf("planOrigins failed: %v", err)
	}

	for _, p := range plans {
		if p.TrainStart != 0 {
			t.Errorf("origin %d: expanding window should start at 0, got %d", p.Origin, p.TrainStart)
		}
		if p.TrainEnd-p.TrainStart != 12+p.Origin-1 {
			t.Errorf("origin %d: expected window span %d, got %d", p.Origin, 12+p.Origin-1, p.TrainEnd-p.TrainStart)
		}
	}
}

func TestPlanOrigins_TimeCoordinates(t *testing.T) {
	s := countingSeries(36, 12)
	ctrl := Control{StepSize: 1, MaxHorizon: 1, MinObs: 12, FixedWindow: true}.withDefaults()

	plans, err := planOrigins(s, ctrl)
	if err != nil {
		t.Fatalf("planOrigins failed: %v", err)
	}

	for _, p := range plans {
		wantStart := 1 + float64(p.Origin-1)/12
		if diff := p.StartTime - wantStart; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("origin %d: expected start time %v, got %v", p.Origin, wantStart, p.StartTime)
		}
	}
}
