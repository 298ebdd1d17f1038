package forecaster

import (
	"context"
	"fmt"

	"github.com/rollcv/rollcv/internal/crossval"
)

// MeanForecaster forecasts the training-window mean at every horizon.
type MeanForecaster struct{}

// NewMeanForecaster creates a new mean forecaster.
func NewMeanForecaster() *MeanForecaster {
	return &MeanForecaster{}
}

func init() {
	Register(NewMeanForecaster())
	Register(NewDriftForecaster())
}

// Name returns the registry name.
func (f *MeanForecaster) Name() string {
	return "mean"
}

// Forecast repeats the window mean.
func (f *MeanForecaster) Forecast(_ context.Context, input crossval.Input) ([]float64, error) {
	if input.Training.Len() == 0 {
		return nil, fmt.Errorf("empty training window")
	}
	mean := input.Training.Mean()
	out := make([]float64, input.Horizon)
	for i := range out {
		out[i] = mean
	}
	return out, nil
}

// DriftForecaster extrapolates the average first-to-last slope of the window.
type DriftForecaster struct{}

// NewDriftForecaster creates a new drift forecaster.
func NewDriftForecaster() *DriftForecaster {
	return &DriftForecaster{}
}

// Name returns the registry name.
func (f *DriftForecaster) Name() string {
	return "drift"
}

// Forecast extends the line through the first and last window observations.
func (f *DriftForecaster) Forecast(_ context.Context, input crossval.Input) ([]float64, error) {
	n := input.Training.Len()
	if n < 2 {
		return nil, fmt.Errorf("drift needs at least 2 observations, have %d", n)
	}
	last := input.Training.Last()
	slope := (last - input.Training.At(0)) / float64(n-1)
	out := make([]float64, input.Horizon)
	for i := range out {
		out[i] = last + slope*float64(i+1)
	}
	return out, nil
}
