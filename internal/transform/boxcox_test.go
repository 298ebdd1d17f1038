package transform

import (
	"math"
	"testing"

	"github.com/rollcv/rollcv/internal/timeseries"
)

func TestForwardInverse_RoundTrip(t *testing.T) {
	values := []float64{0.5, 1, 2, 10, 100}

	for _, lambda := range []float64{-0.5, 0, 0.5, 1, 2} {
		back := Inverse(Forward(values, lambda), lambda)
		for i := range values {
			if math.Abs(back[i]-values[i]) > 1e-9 {
				t.Errorf("lambda %v: round trip of %v gave %v", lambda, values[i], back[i])
			}
		}
	}
}

func TestForward_LambdaZeroIsLog(t *testing.T) {
	out := Forward([]float64{math.E, 1}, 0)
	if math.Abs(out[0]-1) > 1e-12 {
		t.Errorf("Expected log(e)=1, got %v", out[0])
	}
	if math.Abs(out[1]) > 1e-12 {
		t.Errorf("Expected log(1)=0, got %v", out[1])
	}
}

func TestForward_NonPositiveUnderLogIsMissing(t *testing.T) {
	out := Forward([]float64{-1, 0, 1}, 0)
	if !timeseries.IsMissing(out[0]) || !timeseries.IsMissing(out[1]) {
		t.Errorf("Expected missing for non-positive values under log, got %v", out[:2])
	}
	if timeseries.IsMissing(out[2]) {
		t.Error("Expected positive value to transform")
	}
}

func TestForward_LambdaOneShiftsOnly(t *testing.T) {
	out := Forward([]float64{5}, 1)
	if math.Abs(out[0]-4) > 1e-12 {
		t.Errorf("Expected (5-1)/1 = 4, got %v", out[0])
	}
}

func TestKnownMethod(t *testing.T) {
	if !KnownMethod(MethodGuerrero) || !KnownMethod(MethodLogLik) {
		t.Error("Expected built-in methods to be known")
	}
	if KnownMethod("yeo-johnson") {
		t.Error("Did not expect unknown method to be accepted")
	}
}

func TestEstimateLambda_GuerreroMultiplicativeSeries(t *testing.T) {
	// Subseries pairs (s, 2s): the ratio sd/mean^(1-lambda) is constant
	// across groups only at lambda 0.
	var values []float64
	for _, s := range []float64{1, 2, 4, 8} {
		values = append(values, s, 2*s)
	}
	series := timeseries.New(values, 2)

	lambda, err := EstimateLambda(series, MethodGuerrero)
	if err != nil {
		t.Fatalf("EstimateLambda failed: %v", err)
	}
	if math.Abs(lambda) > 0.02 {
		t.Errorf("Expected lambda near 0 for a multiplicative series, got %v", lambda)
	}
}

func TestEstimateLambda_GuerreroTooShort(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3}, 4)
	if _, err := EstimateLambda(series, MethodGuerrero); err == nil {
		t.Error("Expected error for a window shorter than two subseries groups")
	}
}

func TestEstimateLambda_GuerreroNonPositiveMeans(t *testing.T) {
	series := timeseries.New([]float64{-1, -2, -3, -4}, 2)
	if _, err := EstimateLambda(series, MethodGuerrero); err == nil {
		t.Error("Expected error for non-positive subseries means")
	}
}

func TestEstimateLambda_LogLikInRange(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = math.Exp(0.1*float64(i)) * (1 + 0.05*math.Sin(float64(i)))
	}
	series := timeseries.New(values, 1)

	lambda, err := EstimateLambda(series, MethodLogLik)
	if err != nil {
		t.Fatalf("EstimateLambda failed: %v", err)
	}
	if lambda < -1 || lambda > 2 {
		t.Errorf("Expected lambda within the search grid, got %v", lambda)
	}
}

func TestEstimateLambda_LogLikRequiresPositiveWindow(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 0, 4}, 1)
	if _, err := EstimateLambda(series, MethodLogLik); err == nil {
		t.Error("Expected error for a window with non-positive values")
	}
}

func TestEstimateLambda_UnknownMethod(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3, 4}, 1)
	if _, err := EstimateLambda(series, "unknown"); err == nil {
		t.Error("Expected error for unknown estimation method")
	}
}
