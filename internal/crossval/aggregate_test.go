package crossval

import (
	"fmt"
	"math"
	"testing"

	"github.com/rollcv/rollcv/internal/timeseries"
)

func maeSummary(predictions, actuals []float64) (map[string]float64, error) {
	if len(predictions) != len(actuals) {
		return nil, fmt.Errorf("length mismatch")
	}
	sum := 0.0
	for i := range predictions {
		sum += math.Abs(actuals[i] - predictions[i])
	}
	return map[string]float64{"mae": sum / float64(len(predictions))}, nil
}

func TestTruncatePairs_MissingActuals(t *testing.T) {
	preds := []float64{10, 20, 30}
	acts := []float64{1, 2, timeseries.Missing}

	gotPreds, gotActs := truncatePairs(preds, acts)

	if len(gotPreds) != 2 || gotPreds[0] != 10 || gotPreds[1] != 20 {
		t.Errorf("Expected predictions [10 20], got %v", gotPreds)
	}
	if len(gotActs) != 2 || gotActs[0] != 1 || gotActs[1] != 2 {
		t.Errorf("Expected actuals [1 2], got %v", gotActs)
	}
}

func TestTruncatePairs_MissingBothSides(t *testing.T) {
	// Actuals filter first (positional), then prediction filter cuts actuals again.
	preds := []float64{10, timeseries.Missing, 30, 40}
	acts := []float64{1, 2, 3, timeseries.Missing}

	gotPreds, gotActs := truncatePairs(preds, acts)

	if len(gotPreds) != 2 || gotPreds[0] != 10 || gotPreds[1] != 30 {
		t.Errorf("Expected predictions [10 30], got %v", gotPreds)
	}
	if len(gotActs) != 2 || gotActs[0] != 1 || gotActs[1] != 2 {
		t.Errorf("Expected actuals [1 2], got %v", gotActs)
	}
}

func TestTruncatePairs_AllMissing(t *testing.T) {
	preds := []float64{10, 20}
	acts := []float64{timeseries.Missing, timeseries.Missing}

	gotPreds, gotActs := truncatePairs(preds, acts)

	if len(gotPreds) != 0 || len(gotActs) != 0 {
		t.Errorf("Expected empty pair sets, got %v and %v", gotPreds, gotActs)
	}
}

func TestAggregate_PerHorizonRowsAndAllRow(t *testing.T) {
	forecasts := Matrix{
		{10, 10},
		{20, 20},
	}
	actuals := Matrix{
		{11, 13},
		{21, 25},
	}

	rows, err := aggregate(forecasts, actuals, 2, maeSummary)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows (2 horizons + All), got %d", len(rows))
	}
	if rows[0].Horizon != "1" || rows[1].Horizon != "2" || rows[2].Horizon != AllRow {
		t.Fatalf("Unexpected horizon labels: %v %v %v", rows[0].Horizon, rows[1].Horizon, rows[2].Horizon)
	}

	if rows[0].Metrics["mae"] != 1 {
		t.Errorf("Expected horizon 1 mae 1, got %v", rows[0].Metrics["mae"])
	}
	if rows[1].Metrics["mae"] != 4 {
		t.Errorf("Expected horizon 2 mae 4, got %v", rows[1].Metrics["mae"])
	}
	if rows[2].Metrics["mae"] != 2.5 {
		t.Errorf("Expected All mae 2.5, got %v", rows[2].Metrics["mae"])
	}
}

func TestAggregate_UndefinedHorizonSkippedInAllRow(t *testing.T) {
	forecasts := Matrix{
		{10, 10},
	}
	actuals := Matrix{
		{12, timeseries.Missing},
	}

	rows, err := aggregate(forecasts, actuals, 2, maeSummary)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}

	if !timeseries.IsMissing(rows[1].Metrics["mae"]) {
		t.Errorf("Expected horizon 2 mae to be missing, got %v", rows[1].Metrics["mae"])
	}
	if rows[2].Metrics["mae"] != 2 {
		t.Errorf("Expected All mae 2 (horizon 2 skipped), got %v", rows[2].Metrics["mae"])
	}
}

func TestAggregate_InconsistentSummaryKeys(t *testing.T) {
	calls := 0
	summary := func(predictions, actuals []float64) (map[string]float64, error) {
		calls++
		if calls == 1 {
			return map[string]float64{"mae": 0}, nil
		}
		return map[string]float64{"rmse": 0}, nil
	}

	forecasts := Matrix{{10, 10}}
	actuals := Matrix{{11, 12}}

	_, err := aggregate(forecasts, actuals, 2, summary)
	if err == nil {
		t.Fatal("Expected error for inconsistent summary keys")
	}
	if _, ok := err.(*InputError); !ok {
		t.Errorf("Expected InputError, got %T: %v", err, err)
	}
}
