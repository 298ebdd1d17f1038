// Package transform implements the Box-Cox variance-stabilizing transform
// used around model calls when preprocessing is enabled. The transform
// parameter lambda is estimated per training window, either by Guerrero's
// seasonal-subseries method or by profile log-likelihood.
package transform

import (
	"fmt"
	"math"

	"github.com/rollcv/rollcv/internal/timeseries"
)

// Estimation method names accepted by EstimateLambda.
const (
	MethodGuerrero = "guerrero"
	MethodLogLik   = "loglik"
)

// Lambda search grid shared by both estimation methods.
const (
	lambdaMin  = -1.0
	lambdaMax  = 2.0
	lambdaStep = 0.01
)

// KnownMethod reports whether method names a supported estimator.
func KnownMethod(method string) bool {
	return method == MethodGuerrero || method == MethodLogLik
}

// Forward applies the Box-Cox transform with the given lambda to each value.
// Lambda zero means the log transform. Non-positive values map to the missing
// marker under log; fractional powers of negatives do likewise.
func Forward(values []float64, lambda float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = forward(v, lambda)
	}
	return out
}

// Inverse reverses the Box-Cox transform with the given lambda.
func Inverse(values []float64, lambda float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = inverse(v, lambda)
	}
	return out
}

func forward(v, lambda float64) float64 {
	if math.Abs(lambda) < 1e-12 {
		if v <= 0 {
			return timeseries.Missing
		}
		return math.Log(v)
	}
	return (math.Pow(v, lambda) - 1) / lambda
}

func inverse(v, lambda float64) float64 {
	if math.Abs(lambda) < 1e-12 {
		return math.Exp(v)
	}
	return math.Pow(lambda*v+1, 1/lambda)
}

// EstimateLambda estimates the Box-Cox parameter for one training window.
// The window's frequency drives the subseries grouping for Guerrero's method.
func EstimateLambda(s *timeseries.Series, method string) (float64, error) {
	switch method {
	case MethodGuerrero:
		return guerrero(s)
	case MethodLogLik:
		return logLikelihood(s)
	default:
		return 0, fmt.Errorf("unknown transform estimation method %q", method)
	}
}

// guerrero picks the lambda minimizing the coefficient of variation of
// sd_i / mean_i^(1-lambda) across seasonal subseries of the window.
func guerrero(s *timeseries.Series) (float64, error) {
	groupLen := s.Frequency
	if groupLen < 2 {
		groupLen = 2
	}
	numGroups := s.Len() / groupLen
	if numGroups < 2 {
		return 0, fmt.Errorf("window of length %d too short to estimate lambda with group size %d", s.Len(), groupLen)
	}

	means := make([]float64, numGroups)
	sds := make([]float64, numGroups)
	for g := 0; g < numGroups; g++ {
		chunk := s.Values[g*groupLen : (g+1)*groupLen]
		m, sd := meanStd(chunk)
		if m <= 0 {
			return 0, fmt.Errorf("guerrero estimation requires positive subseries means")
		}
		means[g] = m
		sds[g] = sd
	}

	best := 1.0
	bestScore := math.Inf(1)
	ratios := make([]float64, numGroups)
	for lambda := lambdaMin; lambda <= lambdaMax+lambdaStep/2; lambda += lambdaStep {
		for g := 0; g < numGroups; g++ {
			ratios[g] = sds[g] / math.Pow(means[g], 1-lambda)
		}
		m, sd := meanStd(ratios)
		if m == 0 {
			continue
		}
		score := sd / m
		if score < bestScore {
			bestScore = score
			best = lambda
		}
	}
	return best, nil
}

// logLikelihood picks the lambda maximizing the Gaussian profile
// log-likelihood of the transformed window, including the Jacobian term.
// Requires a strictly positive window.
func logLikelihood(s *timeseries.Series) (float64, error) {
	n := s.Len()
	if n < 3 {
		return 0, fmt.Errorf("window of length %d too short to estimate lambda", n)
	}
	logSum := 0.0
	for _, v := range s.Values {
		if v <= 0 {
			return 0, fmt.Errorf("log-likelihood estimation requires a positive window")
		}
		logSum += math.Log(v)
	}

	best := 1.0
	bestScore := math.Inf(-1)
	for lambda := lambdaMin; lambda <= lambdaMax+lambdaStep/2; lambda += lambdaStep {
		transformed := Forward(s.Values, lambda)
		_, sd := meanStd(transformed)
		if sd <= 0 {
			continue
		}
		score := -float64(n)*math.Log(sd) + (lambda-1)*logSum
		if score > bestScore {
			bestScore = score
			best = lambda
		}
	}
	return best, nil
}

func meanStd(values []float64) (mean, sd float64) {
	n := float64(len(values))
	if n == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean = sum / n
	if len(values) < 2 {
		return mean, 0
	}
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return mean, math.Sqrt(sumSq / (n - 1))
}
