package models

import "math"

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// MethodsResponse represents the list of registered forecasting methods
type MethodsResponse struct {
	Methods []string `json:"methods"`
	Metrics []string `json:"metrics"`
}

// AccuracyRowView represents one horizon's accuracy metrics. Undefined
// metrics are null.
type AccuracyRowView struct {
	Horizon string              `json:"horizon"`
	Metrics map[string]*float64 `json:"metrics"`
}

// EvaluateResponse represents an evaluation response. Forecast and actual
// cells that fall past the end of the series are null.
type EvaluateResponse struct {
	RunID     string            `json:"run_id"`
	Method    string            `json:"method"`
	Origins   []int             `json:"origins"`
	Results   []AccuracyRowView `json:"results"`
	Forecasts [][]*float64      `json:"forecasts"`
	Actuals   [][]*float64      `json:"actuals"`
	ElapsedMS int64             `json:"elapsed_ms"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ToNullable converts engine values to a nullable slice, NaN becoming null.
func ToNullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if math.IsNaN(values[i]) {
			continue
		}
		v := values[i]
		out[i] = &v
	}
	return out
}

// ToNullableRows converts engine rows to a nullable table.
func ToNullableRows(rows [][]float64) [][]*float64 {
	out := make([][]*float64, len(rows))
	for i, row := range rows {
		out[i] = ToNullable(row)
	}
	return out
}

// ToNullableMetrics converts a metric map, NaN becoming null.
func ToNullableMetrics(metrics map[string]float64) map[string]*float64 {
	out := make(map[string]*float64, len(metrics))
	for name, value := range metrics {
		if math.IsNaN(value) {
			out[name] = nil
			continue
		}
		v := value
		out[name] = &v
	}
	return out
}
