// Package timeseries provides the regularly-sampled series type used by the
// rolling-origin evaluation engine. A series carries its sampling frequency
// (observations per cycle) and a start position expressed as (cycle,
// period-in-cycle), so index positions can be converted to time coordinates.
package timeseries

import (
	"fmt"
	"math"
)

// Missing is the in-band marker for absent observations.
var Missing = math.NaN()

// IsMissing reports whether v is the missing-value marker.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// Series is an ordered sequence of observations at a fixed sampling frequency.
// The engine treats a Series as immutable: slicing operations copy.
type Series struct {
	Values      []float64
	Frequency   int // observations per cycle, 1 for non-seasonal data
	StartCycle  int // cycle containing the first observation
	StartPeriod int // 1-based position of the first observation within its cycle
}

// New creates a series starting at cycle 1, period 1.
func New(values []float64, frequency int) *Series {
	s, _ := NewWithStart(values, frequency, 1, 1)
	return s
}

// NewWithStart creates a series with explicit start coordinates.
func NewWithStart(values []float64, frequency, startCycle, startPeriod int) (*Series, error) {
	if frequency < 1 {
		frequency = 1
	}
	if startPeriod < 1 || startPeriod > frequency {
		return nil, fmt.Errorf("start period %d out of range for frequency %d", startPeriod, frequency)
	}
	return &Series{
		Values:      values,
		Frequency:   frequency,
		StartCycle:  startCycle,
		StartPeriod: startPeriod,
	}, nil
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// At returns the observation at index i.
func (s *Series) At(i int) float64 {
	return s.Values[i]
}

// Last returns the final observation.
func (s *Series) Last() float64 {
	return s.Values[len(s.Values)-1]
}

// TimeAt converts index i to a fractional time coordinate, where one unit is
// one full cycle. Index 0 maps to StartCycle + (StartPeriod-1)/Frequency.
func (s *Series) TimeAt(i int) float64 {
	return float64(s.StartCycle) + float64(s.StartPeriod-1+i)/float64(s.Frequency)
}

// Window returns a copy of the half-open index range [start, end) with start
// metadata advanced to match.
func (s *Series) Window(start, end int) (*Series, error) {
	if start < 0 || end > len(s.Values) || start > end {
		return nil, fmt.Errorf("window [%d, %d) out of range for series of length %d", start, end, len(s.Values))
	}
	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	offset := s.StartPeriod - 1 + start
	return &Series{
		Values:      values,
		Frequency:   s.Frequency,
		StartCycle:  s.StartCycle + offset/s.Frequency,
		StartPeriod: offset%s.Frequency + 1,
	}, nil
}

// Copy returns a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	return &Series{
		Values:      values,
		Frequency:   s.Frequency,
		StartCycle:  s.StartCycle,
		StartPeriod: s.StartPeriod,
	}
}

// WithValues returns a series with the same metadata but replaced observations.
// The replacement must have the same length.
func (s *Series) WithValues(values []float64) (*Series, error) {
	if len(values) != len(s.Values) {
		return nil, fmt.Errorf("replacement length %d does not match series length %d", len(values), len(s.Values))
	}
	return &Series{
		Values:      values,
		Frequency:   s.Frequency,
		StartCycle:  s.StartCycle,
		StartPeriod: s.StartPeriod,
	}, nil
}

// Mean returns the arithmetic mean of the observations.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return Missing
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}
