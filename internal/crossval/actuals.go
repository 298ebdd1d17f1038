package crossval

import "github.com/rollcv/rollcv/internal/timeseries"

// buildActuals builds the horizon-indexed matrix of true future values. Row j
// corresponds to origin j+1; cell (j, h-1) holds the observation h steps
// after that origin's training window, or the missing marker when the target
// falls past the end of the series. Missing cells are dropped pairwise at
// aggregation time, never imputed.
func buildActuals(s *timeseries.Series, minObs, maxHorizon int) Matrix {
	n := s.Len()
	m := newMatrix(n-minObs, maxHorizon)
	for j := range m {
		for h := 1; h <= maxHorizon; h++ {
			idx := minObs + j + h - 1
			if idx < n {
				m[j][h-1] = s.At(idx)
			}
		}
	}
	return m
}

// restrictToOrigins keeps only the actuals rows matching the realized origin
// set, preserving origin order. Origin i maps to full-matrix row i-1.
func restrictToOrigins(full Matrix, plans []originPlan) Matrix {
	m := make(Matrix, len(plans))
	for i, p := range plans {
		m[i] = full[p.Origin-1]
	}
	return m
}
