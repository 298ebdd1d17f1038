// Package models defines the JSON request and response shapes of the HTTP
// surface. Missing observations cross the wire as null; internally they are
// NaN, which encoding/json cannot carry.
package models

import "math"

// XregPayload represents an exogenous regressor table. Rows align with series
// indices; rows beyond the series cover the forecast horizon.
type XregPayload struct {
	Names []string     `json:"names" validate:"required,min=1"`
	Rows  [][]*float64 `json:"rows" validate:"required"`
}

// EvaluateRequest represents an evaluation request
type EvaluateRequest struct {
	Series      []*float64   `json:"series" validate:"required,min=2"`
	Frequency   int          `json:"frequency,omitempty"`
	Start       []int        `json:"start,omitempty"` // [cycle] or [cycle, period]
	Method      string       `json:"method,omitempty"`
	Horizon     int          `json:"horizon,omitempty"`
	StepSize    int          `json:"step_size,omitempty"`
	MinObs      int          `json:"min_obs,omitempty"`
	Window      string       `json:"window,omitempty"` // fixed or expanding
	Metrics     []string     `json:"metrics,omitempty"`
	PreProcess  bool         `json:"preprocess,omitempty"`
	PPMethod    string       `json:"pp_method,omitempty"`
	Lambda      *float64     `json:"lambda,omitempty"`
	Workers     int          `json:"workers,omitempty"`
	Xreg        *XregPayload `json:"xreg,omitempty"`
}

// WindowFixed and WindowExpanding are the accepted window kinds.
const (
	WindowFixed     = "fixed"
	WindowExpanding = "expanding"
)

// ApplyDefaults fills the zero-valued fields with the documented defaults.
func (r *EvaluateRequest) ApplyDefaults() {
	if r.Frequency <= 0 {
		r.Frequency = 1
	}
	if r.Horizon <= 0 {
		r.Horizon = 1
	}
	if r.StepSize <= 0 {
		r.StepSize = 1
	}
	if r.MinObs <= 0 {
		r.MinObs = 12
	}
	if r.Window == "" {
		r.Window = WindowFixed
	}
}

// FromNullable converts a nullable slice to engine values, null becoming NaN.
func FromNullable(values []*float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *v
		}
	}
	return out
}

// FromNullableRows converts a nullable table to engine rows.
func FromNullableRows(rows [][]*float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = FromNullable(row)
	}
	return out
}
