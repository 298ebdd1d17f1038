package crossval

import (
	"context"

	"github.com/rollcv/rollcv/internal/accuracy"
	"github.com/rollcv/rollcv/internal/logging"
	"github.com/rollcv/rollcv/internal/timeseries"
	"github.com/rollcv/rollcv/internal/transform"
	"github.com/rollcv/rollcv/internal/xreg"
)

// Model is the forecasting function under evaluation. It receives one
// training window and must return exactly Input.Horizon point forecasts.
// Any other return shape is a contract violation and aborts the run.
type Model func(ctx context.Context, input Input) ([]float64, error)

// Input is everything the model sees at one forecast origin. XregTraining and
// XregFuture are nil when the run has no regressors; when present,
// XregTraining rows align one-to-one with Training observations and
// XregFuture holds the Horizon rows immediately after the window.
type Input struct {
	Training     *timeseries.Series
	Horizon      int
	XregTraining *xreg.Table
	XregFuture   *xreg.Table
}

// Summary scores one horizon's predictions against the matching actuals.
// It must return the same key set for every invocation within one run.
type Summary func(predictions, actuals []float64) (map[string]float64, error)

// Control configures one evaluation run. All fields are fixed for the run.
type Control struct {
	// StepSize is the spacing between consecutive forecast origins.
	StepSize int
	// MaxHorizon is the number of steps ahead forecast at each origin.
	MaxHorizon int
	// MinObs is the training length available before the first origin.
	MinObs int
	// FixedWindow selects a sliding window of constant length MinObs;
	// otherwise the window expands from the start of the series.
	FixedWindow bool
	// Summary scores each horizon. Nil selects accuracy.Default.
	Summary Summary
	// PreProcess enables the Box-Cox transform around each model call, with
	// the parameter re-estimated independently per origin.
	PreProcess bool
	// PPMethod names the per-window parameter estimator (guerrero, loglik).
	PPMethod string
	// Lambda is an externally fixed Box-Cox parameter. Setting it together
	// with PreProcess is ambiguous and rejected at validation time.
	Lambda *float64
	// Workers bounds the goroutines forecasting origins concurrently.
	// 0 means GOMAXPROCS; 1 forces sequential execution.
	Workers int
	// Logger receives recoverable-condition warnings. Nil selects the
	// global logger.
	Logger *logging.Logger
}

// DefaultControl returns the documented run defaults.
func DefaultControl() Control {
	return Control{
		StepSize:    1,
		MaxHorizon:  1,
		MinObs:      12,
		FixedWindow: true,
		PreProcess:  false,
		PPMethod:    transform.MethodGuerrero,
	}
}

// withDefaults fills the zero-valued fields that have non-zero defaults.
func (c Control) withDefaults() Control {
	if c.StepSize == 0 {
		c.StepSize = 1
	}
	if c.MaxHorizon == 0 {
		c.MaxHorizon = 1
	}
	if c.MinObs == 0 {
		c.MinObs = 12
	}
	if c.PPMethod == "" {
		c.PPMethod = transform.MethodGuerrero
	}
	if c.Summary == nil {
		c.Summary = accuracy.Default
	}
	if c.Logger == nil {
		c.Logger = logging.Global()
	}
	return c
}

// validate checks the control against the series length n. Every violation
// here is detectable before any model call.
func (c Control) validate(n int) error {
	if c.StepSize < 1 {
		return configErrorf("step size must be at least 1, got %d", c.StepSize)
	}
	if c.MaxHorizon < 1 {
		return configErrorf("max horizon must be at least 1, got %d", c.MaxHorizon)
	}
	if c.MinObs < 1 {
		return configErrorf("min observations must be at least 1, got %d", c.MinObs)
	}
	if c.MinObs >= n {
		return configErrorf("min observations %d leaves no forecast origin for a series of length %d", c.MinObs, n)
	}
	if c.PreProcess {
		if c.Lambda != nil {
			return configErrorf("a fixed lambda and preprocessing are mutually exclusive: the per-window estimate would silently override the supplied parameter")
		}
		if !transform.KnownMethod(c.PPMethod) {
			return configErrorf("unknown preprocessing method %q", c.PPMethod)
		}
	}
	if c.Workers < 0 {
		return configErrorf("workers cannot be negative, got %d", c.Workers)
	}
	return nil
}
