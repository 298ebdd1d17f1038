package crossval

import "github.com/rollcv/rollcv/internal/timeseries"

// originPlan fixes the training bounds for one forecast origin before any
// model runs. TrainEnd is exclusive; the window never includes data at or
// after the origin.
type originPlan struct {
	// Origin is the 1-based step index i of this origin. The training
	// window ends at series position MinObs+i-1 (1-based), so the first
	// forecast target is the observation at 0-based index TrainEnd.
	Origin     int
	TrainStart int     // 0-based inclusive
	TrainEnd   int     // 0-based exclusive
	StartTime  float64 // time coordinate of the first window observation
	EndTime    float64 // time coordinate of the last window observation
}

// planOrigins computes the origin set {1, 1+step, ...} ∩ [1, n-minObs] and
// the training bounds for each origin. For a fixed window every plan spans
// exactly MinObs observations; for an expanding window TrainStart stays 0 and
// the span grows with the origin index.
func planOrigins(s *timeseries.Series, ctrl Control) ([]originPlan, error) {
	n := s.Len()
	if err := ctrl.validate(n); err != nil {
		return nil, err
	}

	var plans []originPlan
	for i := 1; i <= n-ctrl.MinObs; i += ctrl.StepSize {
		trainStart := 0
		if ctrl.FixedWindow {
			trainStart = i - 1
		}
		trainEnd := ctrl.MinObs + i - 1
		plans = append(plans, originPlan{
			Origin:     i,
			TrainStart: trainStart,
			TrainEnd:   trainEnd,
			StartTime:  s.TimeAt(trainStart),
			EndTime:    s.TimeAt(trainEnd - 1),
		})
	}
	return plans, nil
}

// origins extracts the origin indices of a plan set, in order.
func origins(plans []originPlan) []int {
	out := make([]int, len(plans))
	for i, p := range plans {
		out[i] = p.Origin
	}
	return out
}
