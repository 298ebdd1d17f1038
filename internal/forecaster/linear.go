package forecaster

import (
	"context"
	"fmt"
	"math"

	"github.com/rollcv/rollcv/internal/crossval"
)

// LinearForecaster fits an ordinary least squares trend line to the training
// window and extrapolates it.
type LinearForecaster struct{}

// NewLinearForecaster creates a new linear trend forecaster.
func NewLinearForecaster() *LinearForecaster {
	return &LinearForecaster{}
}

func init() {
	Register(NewLinearForecaster())
	Register(NewRegressionForecaster())
}

// Name returns the registry name.
func (f *LinearForecaster) Name() string {
	return "linear"
}

// Forecast extrapolates the fitted trend line.
func (f *LinearForecaster) Forecast(_ context.Context, input crossval.Input) ([]float64, error) {
	n := input.Training.Len()
	if n < 2 {
		return nil, fmt.Errorf("linear trend needs at least 2 observations, have %d", n)
	}

	sumX := 0.0
	sumY := 0.0
	sumXY := 0.0
	sumX2 := 0.0
	for i := 0; i < n; i++ {
		x := float64(i)
		y := input.Training.At(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	denominator := float64(n)*sumX2 - sumX*sumX
	if denominator == 0 {
		return nil, fmt.Errorf("cannot fit trend: degenerate design")
	}
	slope := (float64(n)*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / float64(n)

	out := make([]float64, input.Horizon)
	for i := range out {
		out[i] = intercept + slope*float64(n+i)
	}
	return out, nil
}

// RegressionForecaster fits OLS on an intercept, a time index, and the
// exogenous regressor columns, then predicts with the future regressor rows.
// Without regressors it degenerates to the linear trend.
type RegressionForecaster struct{}

// NewRegressionForecaster creates a new exogenous-regression forecaster.
func NewRegressionForecaster() *RegressionForecaster {
	return &RegressionForecaster{}
}

// Name returns the registry name.
func (f *RegressionForecaster) Name() string {
	return "linreg"
}

// Forecast fits the regression and evaluates it over the forecast horizon.
func (f *RegressionForecaster) Forecast(ctx context.Context, input crossval.Input) ([]float64, error) {
	if input.XregTraining == nil {
		return NewLinearForecaster().Forecast(ctx, input)
	}

	n := input.Training.Len()
	k := 2 + input.XregTraining.NumCols() // intercept, trend, regressors
	if n <= k {
		return nil, fmt.Errorf("regression needs more than %d observations, have %d", k, n)
	}

	design := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, k)
		row[0] = 1
		row[1] = float64(i)
		copy(row[2:], input.XregTraining.Row(i))
		design[i] = row
	}

	coef, err := solveNormalEquations(design, input.Training.Values)
	if err != nil {
		return nil, err
	}

	out := make([]float64, input.Horizon)
	for h := 0; h < input.Horizon; h++ {
		row := make([]float64, k)
		row[0] = 1
		row[1] = float64(n + h)
		copy(row[2:], input.XregFuture.Row(h))
		pred := 0.0
		for j := 0; j < k; j++ {
			pred += coef[j] * row[j]
		}
		out[h] = pred
	}
	return out, nil
}

// solveNormalEquations solves (X'X) b = X'y by Gaussian elimination with
// partial pivoting.
func solveNormalEquations(design [][]float64, y []float64) ([]float64, error) {
	k := len(design[0])
	a := make([][]float64, k)
	b := make([]float64, k)
	for i := 0; i < k; i++ {
		a[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			sum := 0.0
			for r := range design {
				sum += design[r][i] * design[r][j]
			}
			a[i][j] = sum
		}
		sum := 0.0
		for r := range design {
			sum += design[r][i] * y[r]
		}
		b[i] = sum
	}

	for col := 0; col < k; col++ {
		pivot := col
		for r := col + 1; r < k; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("cannot fit regression: singular design matrix")
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < k; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < k; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	coef := make([]float64, k)
	for i := k - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < k; j++ {
			sum -= a[i][j] * coef[j]
		}
		coef[i] = sum / a[i][i]
	}
	return coef, nil
}
