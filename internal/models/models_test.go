package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateRequest_ApplyDefaults(t *testing.T) {
	req := EvaluateRequest{}
	req.ApplyDefaults()

	assert.Equal(t, 1, req.Frequency)
	assert.Equal(t, 1, req.Horizon)
	assert.Equal(t, 1, req.StepSize)
	assert.Equal(t, 12, req.MinObs)
	assert.Equal(t, WindowFixed, req.Window)
}

func TestEvaluateRequest_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	req := EvaluateRequest{
		Frequency: 12,
		Horizon:   6,
		StepSize:  2,
		MinObs:    24,
		Window:    WindowExpanding,
	}
	req.ApplyDefaults()

	assert.Equal(t, 12, req.Frequency)
	assert.Equal(t, 6, req.Horizon)
	assert.Equal(t, 2, req.StepSize)
	assert.Equal(t, 24, req.MinObs)
	assert.Equal(t, WindowExpanding, req.Window)
}

func TestFromNullable(t *testing.T) {
	v := 1.5
	out := FromNullable([]*float64{&v, nil})

	assert.Len(t, out, 2)
	assert.Equal(t, 1.5, out[0])
	assert.True(t, math.IsNaN(out[1]))
}

func TestFromNullableRows(t *testing.T) {
	v := 2.0
	out := FromNullableRows([][]*float64{{&v, nil}})

	assert.Len(t, out, 1)
	assert.Equal(t, 2.0, out[0][0])
	assert.True(t, math.IsNaN(out[0][1]))
}

func TestToNullable(t *testing.T) {
	out := ToNullable([]float64{1.5, math.NaN()})

	assert.Len(t, out, 2)
	assert.Equal(t, 1.5, *out[0])
	assert.Nil(t, out[1])
}

func TestToNullable_NoAliasing(t *testing.T) {
	out := ToNullable([]float64{1, 2})
	assert.NotSame(t, out[0], out[1])
	assert.Equal(t, 1.0, *out[0])
	assert.Equal(t, 2.0, *out[1])
}

func TestToNullableRows(t *testing.T) {
	out := ToNullableRows([][]float64{{1, math.NaN()}, {3, 4}})

	assert.Len(t, out, 2)
	assert.Nil(t, out[0][1])
	assert.Equal(t, 4.0, *out[1][1])
}

func TestToNullableMetrics(t *testing.T) {
	out := ToNullableMetrics(map[string]float64{"mae": 1.5, "mape": math.NaN()})

	assert.Equal(t, 1.5, *out["mae"])
	assert.Nil(t, out["mape"])
}

func TestNullableRoundTrip(t *testing.T) {
	original := []float64{1, math.NaN(), 3}
	back := FromNullable(ToNullable(original))

	assert.Equal(t, original[0], back[0])
	assert.True(t, math.IsNaN(back[1]))
	assert.Equal(t, original[2], back[2])
}
