// Package accuracy provides the built-in summary functions used to score
// forecasts against actuals. The engine accepts any summary conforming to
// crossval.Summary; these are the defaults wired into the CLI and the HTTP
// service.
package accuracy

import (
	"fmt"
	"math"
)

// Metric names returned by Default.
const (
	MetricME    = "me"
	MetricMAE   = "mae"
	MetricRMSE  = "rmse"
	MetricMAPE  = "mape"
	MetricSMAPE = "smape"
	MetricMPE   = "mpe"
)

// AllMetrics lists every built-in metric name, in reporting order.
var AllMetrics = []string{MetricME, MetricMAE, MetricRMSE, MetricMAPE, MetricSMAPE, MetricMPE}

// Default computes the full built-in metric set for one horizon.
func Default(predictions, actuals []float64) (map[string]float64, error) {
	return compute(predictions, actuals, AllMetrics)
}

// Selected returns a summary function restricted to the named metrics.
func Selected(names []string) (func(predictions, actuals []float64) (map[string]float64, error), error) {
	if len(names) == 0 {
		return Default, nil
	}
	known := make(map[string]bool, len(AllMetrics))
	for _, name := range AllMetrics {
		known[name] = true
	}
	for _, name := range names {
		if !known[name] {
			return nil, fmt.Errorf("unknown accuracy metric %q", name)
		}
	}
	return func(predictions, actuals []float64) (map[string]float64, error) {
		return compute(predictions, actuals, names)
	}, nil
}

func compute(predictions, actuals []float64, names []string) (map[string]float64, error) {
	if len(predictions) != len(actuals) {
		return nil, fmt.Errorf("predictions length %d does not match actuals length %d", len(predictions), len(actuals))
	}
	out := make(map[string]float64, len(names))
	for _, name := range names {
		switch name {
		case MetricME:
			out[name] = ME(predictions, actuals)
		case MetricMAE:
			out[name] = MAE(predictions, actuals)
		case MetricRMSE:
			out[name] = RMSE(predictions, actuals)
		case MetricMAPE:
			out[name] = MAPE(predictions, actuals)
		case MetricSMAPE:
			out[name] = SMAPE(predictions, actuals)
		case MetricMPE:
			out[name] = MPE(predictions, actuals)
		default:
			return nil, fmt.Errorf("unknown accuracy metric %q", name)
		}
	}
	return out, nil
}

// ME computes the mean error (bias).
func ME(predictions, actuals []float64) float64 {
	if len(actuals) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := range actuals {
		sum += actuals[i] - predictions[i]
	}
	return sum / float64(len(actuals))
}

// MAE computes the mean absolute error.
func MAE(predictions, actuals []float64) float64 {
	if len(actuals) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := range actuals {
		sum += math.Abs(actuals[i] - predictions[i])
	}
	return sum / float64(len(actuals))
}

// RMSE computes the root mean squared error.
func RMSE(predictions, actuals []float64) float64 {
	if len(actuals) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := range actuals {
		d := actuals[i] - predictions[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(actuals)))
}

// MAPE computes the mean absolute percentage error over non-zero actuals.
func MAPE(predictions, actuals []float64) float64 {
	sum := 0.0
	count := 0
	for i := range actuals {
		if actuals[i] == 0 {
			continue
		}
		sum += math.Abs((actuals[i] - predictions[i]) / actuals[i])
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count) * 100
}

// SMAPE computes the symmetric mean absolute percentage error.
func SMAPE(predictions, actuals []float64) float64 {
	sum := 0.0
	count := 0
	for i := range actuals {
		denom := (math.Abs(actuals[i]) + math.Abs(predictions[i])) / 2
		if denom == 0 {
			continue
		}
		sum += math.Abs(actuals[i]-predictions[i]) / denom
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count) * 100
}

// MPE computes the mean percentage error over non-zero actuals.
func MPE(predictions, actuals []float64) float64 {
	sum := 0.0
	count := 0
	for i := range actuals {
		if actuals[i] == 0 {
			continue
		}
		sum += (actuals[i] - predictions[i]) / actuals[i]
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count) * 100
}
