package crossval

import (
	"fmt"
	"sort"

	"github.com/rollcv/rollcv/internal/timeseries"
)

// AllRow labels the synthetic accuracy row averaged across horizons.
const AllRow = "All"

// AccuracyRow holds one horizon's metrics, or the trailing "All" row.
type AccuracyRow struct {
	Horizon string             `json:"horizon"`
	Metrics map[string]float64 `json:"metrics"`
}

// truncatePairs applies the two-step symmetric truncation for one horizon:
// predictions are cut positionally to the count of non-missing actuals, then
// missing predictions are dropped and the retained actuals are cut to match.
func truncatePairs(predictions, actuals []float64) (preds, acts []float64) {
	acts = make([]float64, 0, len(actuals))
	for _, v := range actuals {
		if !timeseries.IsMissing(v) {
			acts = append(acts, v)
		}
	}
	if len(predictions) > len(acts) {
		predictions = predictions[:len(acts)]
	}
	preds = make([]float64, 0, len(predictions))
	for _, v := range predictions {
		if !timeseries.IsMissing(v) {
			preds = append(preds, v)
		}
	}
	if len(acts) > len(preds) {
		acts = acts[:len(preds)]
	}
	return preds, acts
}

// aggregate scores each horizon column of the forecast matrix against the
// matching actuals column and appends the "All" row. A horizon left with no
// retained pairs gets undefined (missing) metrics instead of failing the run.
func aggregate(forecasts, actuals Matrix, maxHorizon int, summary Summary) ([]AccuracyRow, error) {
	rows := make([]AccuracyRow, 0, maxHorizon+1)
	var keys []string

	for h := 1; h <= maxHorizon; h++ {
		preds, acts := truncatePairs(forecasts.Column(h-1), actuals.Column(h-1))
		row := AccuracyRow{Horizon: fmt.Sprintf("%d", h)}
		if len(preds) > 0 {
			metrics, err := summary(preds, acts)
			if err != nil {
				return nil, fmt.Errorf("summary failed at horizon %d: %w", h, err)
			}
			if keys == nil {
				keys = sortedKeys(metrics)
			} else if !sameKeys(keys, metrics) {
				return nil, inputErrorf("summary returned a different field set at horizon %d", h)
			}
			row.Metrics = metrics
		}
		rows = append(rows, row)
	}

	// Horizons with no retained pairs still get every field, as missing.
	for i := range rows {
		if rows[i].Metrics == nil {
			undefined := make(map[string]float64, len(keys))
			for _, k := range keys {
				undefined[k] = timeseries.Missing
			}
			rows[i].Metrics = undefined
		}
	}

	rows = append(rows, allRow(rows, keys))
	return rows, nil
}

// allRow averages each metric across the defined horizon rows.
func allRow(rows []AccuracyRow, keys []string) AccuracyRow {
	overall := make(map[string]float64, len(keys))
	for _, k := range keys {
		sum := 0.0
		count := 0
		for _, row := range rows {
			v := row.Metrics[k]
			if timeseries.IsMissing(v) {
				continue
			}
			sum += v
			count++
		}
		if count == 0 {
			overall[k] = timeseries.Missing
			continue
		}
		overall[k] = sum / float64(count)
	}
	return AccuracyRow{Horizon: AllRow, Metrics: overall}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sameKeys(keys []string, m map[string]float64) bool {
	if len(keys) != len(m) {
		return false
	}
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}
