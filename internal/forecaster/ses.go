package forecaster

import (
	"context"
	"fmt"

	"github.com/rollcv/rollcv/internal/crossval"
)

// SESForecaster implements simple exponential smoothing with a fixed
// smoothing factor. The flat smoothed level is the forecast at every horizon.
type SESForecaster struct {
	Alpha float64
}

// NewSESForecaster creates a simple exponential smoothing forecaster.
// Alpha outside (0, 1] falls back to 0.3.
func NewSESForecaster(alpha float64) *SESForecaster {
	if alpha <= 0 || alpha > 1 {
		alpha = 0.3
	}
	return &SESForecaster{Alpha: alpha}
}

func init() {
	Register(NewSESForecaster(0.3))
}

// Name returns the registry name.
func (f *SESForecaster) Name() string {
	return "ses"
}

// Forecast smooths the window and repeats the final level.
func (f *SESForecaster) Forecast(_ context.Context, input crossval.Input) ([]float64, error) {
	n := input.Training.Len()
	if n == 0 {
		return nil, fmt.Errorf("empty training window")
	}
	level := input.Training.At(0)
	for i := 1; i < n; i++ {
		level = f.Alpha*input.Training.At(i) + (1-f.Alpha)*level
	}
	out := make([]float64, input.Horizon)
	for i := range out {
		out[i] = level
	}
	return out, nil
}
