package forecaster

import (
	"context"
	"fmt"

	"github.com/rollcv/rollcv/internal/crossval"
)

// NaiveForecaster repeats the last observation for every horizon step.
type NaiveForecaster struct{}

// NewNaiveForecaster creates a new naive (persistence) forecaster.
func NewNaiveForecaster() *NaiveForecaster {
	return &NaiveForecaster{}
}

func init() {
	Register(NewNaiveForecaster())
	Register(NewSeasonalNaiveForecaster())
}

// Name returns the registry name.
func (f *NaiveForecaster) Name() string {
	return "naive"
}

// Forecast repeats the final training observation.
func (f *NaiveForecaster) Forecast(_ context.Context, input crossval.Input) ([]float64, error) {
	if input.Training.Len() == 0 {
		return nil, fmt.Errorf("empty training window")
	}
	last := input.Training.Last()
	out := make([]float64, input.Horizon)
	for i := range out {
		out[i] = last
	}
	return out, nil
}

// SeasonalNaiveForecaster repeats the last observed cycle.
type SeasonalNaiveForecaster struct{}

// NewSeasonalNaiveForecaster creates a new seasonal naive forecaster.
func NewSeasonalNaiveForecaster() *SeasonalNaiveForecaster {
	return &SeasonalNaiveForecaster{}
}

// Name returns the registry name.
func (f *SeasonalNaiveForecaster) Name() string {
	return "snaive"
}

// Forecast repeats the final full cycle of the training window.
func (f *SeasonalNaiveForecaster) Forecast(_ context.Context, input crossval.Input) ([]float64, error) {
	n := input.Training.Len()
	period := input.Training.Frequency
	if period < 1 {
		period = 1
	}
	if n < period {
		return nil, fmt.Errorf("training window of length %d shorter than one cycle of %d", n, period)
	}
	out := make([]float64, input.Horizon)
	for i := range out {
		out[i] = input.Training.At(n - period + i%period)
	}
	return out, nil
}
