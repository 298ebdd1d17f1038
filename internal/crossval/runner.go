package crossval

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/rollcv/rollcv/internal/timeseries"
	"github.com/rollcv/rollcv/internal/transform"
	"github.com/rollcv/rollcv/internal/xreg"
)

// inputSlicer builds the model input for one origin. The series-only and
// series-with-regressors variants are resolved once at run start instead of
// branching per origin.
type inputSlicer func(plan originPlan) (Input, error)

func newInputSlicer(s *timeseries.Series, table *xreg.Table, ctrl Control) inputSlicer {
	if table == nil {
		return func(p originPlan) (Input, error) {
			win, err := s.Window(p.TrainStart, p.TrainEnd)
			if err != nil {
				return Input{}, err
			}
			return Input{Training: win, Horizon: ctrl.MaxHorizon}, nil
		}
	}
	return func(p originPlan) (Input, error) {
		win, err := s.Window(p.TrainStart, p.TrainEnd)
		if err != nil {
			return Input{}, err
		}
		xt, err := table.Slice(p.TrainStart, p.TrainEnd)
		if err != nil {
			return Input{}, err
		}
		xf, err := table.Slice(p.TrainEnd, p.TrainEnd+ctrl.MaxHorizon)
		if err != nil {
			return Input{}, err
		}
		return Input{Training: win, Horizon: ctrl.MaxHorizon, XregTraining: xt, XregFuture: xf}, nil
	}
}

// runForecasts evaluates the model at every planned origin and combines the
// results into a forecast matrix whose row order matches the origin set,
// regardless of completion order. The first failing origin cancels the
// outstanding ones and aborts the run.
func runForecasts(ctx context.Context, s *timeseries.Series, table *xreg.Table, plans []originPlan, model Model, ctrl Control) (Matrix, error) {
	slicer := newInputSlicer(s, table, ctrl)
	rows := make([][]float64, len(plans))

	evalOrigin := func(ctx context.Context, idx int) error {
		input, err := slicer(plans[idx])
		if err != nil {
			return err
		}

		lambda := 0.0
		transformed := false
		switch {
		case ctrl.PreProcess:
			lambda, err = transform.EstimateLambda(input.Training, ctrl.PPMethod)
			if err != nil {
				return err
			}
			transformed = true
		case ctrl.Lambda != nil:
			lambda = *ctrl.Lambda
			transformed = true
		}
		if transformed {
			win, err := input.Training.WithValues(transform.Forward(input.Training.Values, lambda))
			if err != nil {
				return err
			}
			input.Training = win
		}

		out, err := model(ctx, input)
		if err != nil {
			return err
		}
		if len(out) != ctrl.MaxHorizon {
			return fmt.Errorf("model returned %d forecasts, want %d", len(out), ctrl.MaxHorizon)
		}
		if transformed {
			out = transform.Inverse(out, lambda)
		}

		// Copy so a model reusing its output buffer cannot corrupt the matrix.
		row := make([]float64, len(out))
		copy(row, out)
		rows[idx] = row
		return nil
	}

	workers := ctrl.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(plans) {
		workers = len(plans)
	}

	if workers <= 1 {
		for idx := range plans {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := evalOrigin(ctx, idx); err != nil {
				return nil, &OriginError{Origin: plans[idx].Origin, Err: err}
			}
		}
		return Matrix(rows), nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu        sync.Mutex
		failedIdx = -1
		failedErr error
	)
	record := func(idx int, err error) {
		mu.Lock()
		if failedIdx == -1 || idx < failedIdx {
			failedIdx = idx
			failedErr = err
		}
		mu.Unlock()
		cancel()
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if runCtx.Err() != nil {
					continue
				}
				if err := evalOrigin(runCtx, idx); err != nil {
					record(idx, err)
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for idx := range plans {
			select {
			case jobs <- idx:
			case <-runCtx.Done():
				return
			}
		}
	}()

	wg.Wait()

	if failedIdx >= 0 {
		return nil, &OriginError{Origin: plans[failedIdx].Origin, Err: failedErr}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Matrix(rows), nil
}
