package core

import "math"

// QuadraticSolution holds the roots of at² + bt + c = 0.
// A root of +Inf means that root does not exist.
type QuadraticSolution struct {
	T1, T2 float64
}

// NoRoots is the solution of an equation with a negative discriminant
var NoRoots = QuadraticSolution{T1: math.Inf(1), T2: math.Inf(1)}

// SolveQuadratic solves at² + bt + c = 0 for t. a must be nonzero.
//
// A negative discriminant gives NoRoots, a zero discriminant gives a single root in T1,
// and a positive one gives two finite roots with T1 >= T2.
func SolveQuadratic(a, b, c float64) QuadraticSolution {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return NoRoots
	}

	if discriminant == 0 {
		return QuadraticSolution{T1: -b / (2 * a), T2: math.Inf(1)}
	}

	sqrtD := math.Sqrt(discriminant)
	return QuadraticSolution{
		T1: (-b + sqrtD) / (2 * a),
		T2: (-b - sqrtD) / (2 * a),
	}
}

// Roots returns the finite roots in order T1, T2
func (s QuadraticSolution) Roots() []float64 {
	roots := make([]float64, 0, 2)
	for _, t := range [2]float64{s.T1, s.T2} {
		if !math.IsInf(t, 1) {
			roots = append(roots, t)
		}
	}
	return roots
}

// Count returns the number of real roots
func (s QuadraticSolution) Count() int {
	return len(s.Roots())
}
