package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name          string
		coeffs        [3]float64
		expectedCount int
		expectedT1    float64
		expectedT2    float64
	}{
		{
			name:          "negative discriminant",
			coeffs:        [3]float64{1, 0, 1},
			expectedCount: 0,
			expectedT1:    math.Inf(1),
			expectedT2:    math.Inf(1),
		},
		{
			name:          "zero discriminant",
			coeffs:        [3]float64{1, -4, 4},
			expectedCount: 1,
			expectedT1:    2,
			expectedT2:    math.Inf(1),
		},
		{
			name:          "two roots",
			coeffs:        [3]float64{1, -5, 6},
			expectedCount: 2,
			expectedT1:    3,
			expectedT2:    2,
		},
		{
			name:          "roots straddling zero",
			coeffs:        [3]float64{2, 0, -8},
			expectedCount: 2,
			expectedT1:    2,
			expectedT2:    -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solution := SolveQuadratic(tt.coeffs[0], tt.coeffs[1], tt.coeffs[2])

			if solution.Count() != tt.expectedCount {
				t.Errorf("Expected %d roots, got %d (%v)", tt.expectedCount, solution.Count(), solution)
			}
			if !sameRoot(solution.T1, tt.expectedT1) {
				t.Errorf("Expected t1=%f, got %f", tt.expectedT1, solution.T1)
			}
			if !sameRoot(solution.T2, tt.expectedT2) {
				t.Errorf("Expected t2=%f, got %f", tt.expectedT2, solution.T2)
			}
		})
	}
}

func TestSolveQuadratic_OrderedRoots(t *testing.T) {
	// Ray/sphere shaped coefficients: a = |d|² > 0
	for _, coeffs := range [][3]float64{
		{1, 2, -3},
		{3, -7, 1},
		{0.5, 10, 2},
		{14, -3, -100},
	} {
		solution := SolveQuadratic(coeffs[0], coeffs[1], coeffs[2])
		if solution.Count() != 2 {
			t.Fatalf("Expected two roots for %v, got %v", coeffs, solution)
		}
		if solution.T1 < solution.T2 {
			t.Errorf("Expected t1 >= t2 for %v, got %v", coeffs, solution)
		}
		for _, root := range solution.Roots() {
			residual := coeffs[0]*root*root + coeffs[1]*root + coeffs[2]
			if !scalar.EqualWithinAbs(residual, 0, 1e-9) {
				t.Errorf("Root %f of %v leaves residual %g", root, coeffs, residual)
			}
		}
	}
}

func sameRoot(got, expected float64) bool {
	if math.IsInf(expected, 1) {
		return math.IsInf(got, 1)
	}
	return scalar.EqualWithinAbs(got, expected, 1e-9)
}
