// Package crossval evaluates a forecasting function on a single series with
// rolling-origin (walk-forward) cross-validation. At each origin it slices a
// fixed or expanding training window, optionally applies a Box-Cox transform,
// invokes the model for the full horizon, and scores the collected forecasts
// against the horizon-aligned actuals.
//
// Origins are independent and may run in parallel; the forecast matrix always
// comes back in origin order, and parallel and sequential runs produce
// identical results.
package crossval

import (
	"context"

	"github.com/rollcv/rollcv/internal/timeseries"
	"github.com/rollcv/rollcv/internal/xreg"
)

// Result is the outcome of one evaluation run.
type Result struct {
	// Actuals holds the true future values, one row per realized origin,
	// one column per horizon. Cells past the end of the series are missing.
	Actuals Matrix
	// Forecasts holds the model's point forecasts, aligned with Actuals.
	Forecasts Matrix
	// Results holds one accuracy row per horizon plus the trailing "All"
	// row averaged across horizons.
	Results []AccuracyRow
	// Origins is the realized origin set, in evaluation order.
	Origins []int
}

// Evaluate runs rolling-origin cross-validation of model over the series.
// regs may be nil. The control's zero-valued fields take the documented
// defaults; FixedWindow false means an expanding window.
func Evaluate(ctx context.Context, s *timeseries.Series, regs *xreg.Table, model Model, ctrl Control) (*Result, error) {
	if s == nil || s.Len() == 0 {
		return nil, inputErrorf("series is empty")
	}
	if model == nil {
		return nil, configErrorf("model function is required")
	}

	ctrl = ctrl.withDefaults()
	if err := ctrl.validate(s.Len()); err != nil {
		return nil, err
	}

	if regs != nil {
		required := s.Len() + ctrl.MaxHorizon
		if regs.NumRows() < required {
			ctrl.Logger.Warn("Regressor table shorter than series plus horizon, padding with missing rows",
				"rows", regs.NumRows(),
				"required", required)
			regs = regs.Extend(required)
		}
	}

	plans, err := planOrigins(s, ctrl)
	if err != nil {
		return nil, err
	}

	fullActuals := buildActuals(s, ctrl.MinObs, ctrl.MaxHorizon)

	forecasts, err := runForecasts(ctx, s, regs, plans, model, ctrl)
	if err != nil {
		return nil, err
	}

	actuals := restrictToOrigins(fullActuals, plans)

	results, err := aggregate(forecasts, actuals, ctrl.MaxHorizon, ctrl.Summary)
	if err != nil {
		return nil, err
	}

	return &Result{
		Actuals:   actuals,
		Forecasts: forecasts,
		Results:   results,
		Origins:   origins(plans),
	}, nil
}
