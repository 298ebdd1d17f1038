package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rollcv/rollcv/internal/accuracy"
	"github.com/rollcv/rollcv/internal/config"
	"github.com/rollcv/rollcv/internal/crossval"
	"github.com/rollcv/rollcv/internal/forecaster"
	"github.com/rollcv/rollcv/internal/logging"
	"github.com/rollcv/rollcv/internal/timeseries"
	"github.com/rollcv/rollcv/internal/xreg"
)

// EvalService handles evaluation business logic
type EvalService struct {
	logger *logging.Logger
	cfg    config.EvalConfig
}

// NewEvalService creates a new EvalService
func NewEvalService(logger *logging.Logger, cfg config.EvalConfig) *EvalService {
	return &EvalService{
		logger: logger,
		cfg:    cfg,
	}
}

// EvalRequest represents an evaluation request. Missing series values are
// encoded as NaN.
type EvalRequest struct {
	Series      []float64
	Frequency   int
	StartCycle  int
	StartPeriod int
	Method      string
	Horizon     int
	StepSize    int
	MinObs      int
	FixedWindow bool
	Metrics     []string
	PreProcess  bool
	PPMethod    string
	Lambda      *float64
	Workers     int
	XregNames   []string
	XregRows    [][]float64
}

// EvalResult represents the outcome of one evaluation run
type EvalResult struct {
	RunID     string
	Method    string
	Origins   []int
	Results   []crossval.AccuracyRow
	Forecasts crossval.Matrix
	Actuals   crossval.Matrix
	ElapsedMS int64
}

// Execute runs a rolling-origin evaluation for the request
func (s *EvalService) Execute(ctx context.Context, req *EvalRequest) (*EvalResult, error) {
	startExec := time.Now()
	runID := uuid.New().String()

	if len(req.Series) == 0 {
		return nil, NewServiceError("INVALID_SERIES", "series is required and must not be empty")
	}
	if s.cfg.MaxSeriesLength > 0 && len(req.Series) > s.cfg.MaxSeriesLength {
		return nil, NewServiceErrorWithDetails("LIMIT_EXCEEDED", "series exceeds the configured length limit",
			map[string]interface{}{
				"series_length": len(req.Series),
				"limit":         s.cfg.MaxSeriesLength,
			})
	}
	if s.cfg.MaxHorizon > 0 && req.Horizon > s.cfg.MaxHorizon {
		return nil, NewServiceErrorWithDetails("LIMIT_EXCEEDED", "horizon exceeds the configured limit",
			map[string]interface{}{
				"horizon": req.Horizon,
				"limit":   s.cfg.MaxHorizon,
			})
	}

	method := req.Method
	if method == "" {
		method = s.cfg.DefaultMethod
	}
	model, err := forecaster.Get(method)
	if err != nil {
		return nil, NewServiceErrorWithDetails("UNKNOWN_METHOD", err.Error(),
			map[string]interface{}{
				"available_methods": forecaster.List(),
			})
	}

	summary, err := accuracy.Selected(req.Metrics)
	if err != nil {
		return nil, NewServiceError("INVALID_CONFIG", err.Error())
	}

	startCycle := req.StartCycle
	if startCycle == 0 {
		startCycle = 1
	}
	startPeriod := req.StartPeriod
	if startPeriod == 0 {
		startPeriod = 1
	}
	series, err := timeseries.NewWithStart(req.Series, req.Frequency, startCycle, startPeriod)
	if err != nil {
		return nil, NewServiceError("INVALID_SERIES", err.Error())
	}

	var regs *xreg.Table
	if len(req.XregNames) > 0 {
		regs, err = xreg.New(req.XregNames, req.XregRows)
		if err != nil {
			return nil, NewServiceError("INVALID_XREG", err.Error())
		}
	}

	workers := req.Workers
	if workers == 0 {
		workers = s.cfg.Workers
	}

	ctrl := crossval.Control{
		StepSize:    req.StepSize,
		MaxHorizon:  req.Horizon,
		MinObs:      req.MinObs,
		FixedWindow: req.FixedWindow,
		Summary:     summary,
		PreProcess:  req.PreProcess,
		PPMethod:    req.PPMethod,
		Lambda:      req.Lambda,
		Workers:     workers,
		Logger:      s.logger,
	}

	result, err := crossval.Evaluate(ctx, series, regs, forecaster.Model(model), ctrl)
	if err != nil {
		return nil, s.translateEvalError(err)
	}

	latency := time.Since(startExec)
	s.logger.Info("Evaluation completed",
		"run_id", runID,
		"method", method,
		"series_length", len(req.Series),
		"horizon", ctrl.MaxHorizon,
		"origins", len(result.Origins),
		"latency_ms", latency.Milliseconds())

	return &EvalResult{
		RunID:     runID,
		Method:    method,
		Origins:   result.Origins,
		Results:   result.Results,
		Forecasts: result.Forecasts,
		Actuals:   result.Actuals,
		ElapsedMS: latency.Milliseconds(),
	}, nil
}

// translateEvalError maps engine errors onto coded service errors
func (s *EvalService) translateEvalError(err error) *ServiceError {
	var cfgErr *crossval.ConfigError
	if errors.As(err, &cfgErr) {
		return NewServiceError("INVALID_CONFIG", cfgErr.Error())
	}
	var inErr *crossval.InputError
	if errors.As(err, &inErr) {
		return NewServiceError("INVALID_SERIES", inErr.Error())
	}
	var orErr *crossval.OriginError
	if errors.As(err, &orErr) {
		return NewServiceErrorWithDetails("MODEL_FAILED", orErr.Error(),
			map[string]interface{}{
				"origin": orErr.Origin,
			})
	}
	return NewServiceError("EVAL_FAILED", err.Error())
}
