// SPDX-License-Identifier: MIT

// Package solve provides iterative linear solvers over the sparse matrix
// capability contract.
//
// Purpose:
//   - ConjugateGradient consumes only sparsemat.Matrix and vec.Dense: any
//     storage engine works, including the block-partitioned wrapper.
//   - The solver assumes, and does not verify, that the matrix is symmetric
//     positive-definite; violating that yields non-convergence, not a
//     detected error. Squareness and vector dimensions ARE verified.
//   - Solve reports a convergence verdict, the iteration count and the
//     final residual (Stats) instead of silently returning the iterate.
//
// Determinism:
//   - Fixed iteration structure; rounding follows the engine's row
//     iteration order (sort rows first for a canonical rounding).

package solve

import (
	"math"

	"github.com/katalvlaran/sparsemat"
	"github.com/katalvlaran/sparsemat/vec"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the residual norm below which the iteration stops.
	DefaultTolerance = 1e-12

	// DefaultMaxIterations bounds the iteration count; reaching it without
	// converging yields Stats.Converged == false, not an error.
	DefaultMaxIterations = 10_000
)

// Stats reports how a solve ended.
type Stats struct {
	// Converged is true when the residual norm fell below the tolerance.
	Converged bool

	// Iterations is the number of iterations performed.
	Iterations int

	// Residual is the final residual L2 norm.
	Residual float64
}

// Option configures a solver. Options panic on nonsensical values
// (programmer error), matching the package-wide option policy.
type Option func(*settings)

type settings struct {
	tol     float64
	maxIter int
}

// WithTolerance sets the convergence tolerance. Panics when tol <= 0.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("solve: tolerance must be > 0")
	}
	return func(s *settings) { s.tol = tol }
}

// WithMaxIterations sets the iteration cap. Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("solve: max iterations must be > 0")
	}
	return func(s *settings) { s.maxIter = n }
}

// ConjugateGradient is an iterative method for symmetric positive-definite
// systems A·x = b.
type ConjugateGradient[V sparsemat.Float] struct {
	tol     float64
	maxIter int
}

// NewCG returns a conjugate gradient solver with the documented defaults,
// adjusted by opts.
func NewCG[V sparsemat.Float](opts ...Option) ConjugateGradient[V] {
	s := settings{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&s)
	}
	return ConjugateGradient[V]{tol: s.tol, maxIter: s.maxIter}
}

// Solve runs conjugate gradient on A·x = b, using x as the initial guess
// and refining it in place.
//
// Errors: ErrNonSquare when mat is not square; ErrDimensionMismatch when b
// or x disagree with the matrix dimension. Exhausting the iteration budget
// is NOT an error — inspect Stats.Converged.
//
// Complexity: O(maxIter × (nnz + rows)).
func (cg ConjugateGradient[V]) Solve(mat sparsemat.Matrix[V], b, x *vec.Dense[V]) (Stats, error) {
	n := mat.NRows()
	if n != mat.NCols() {
		return Stats{}, sparsemat.ErrNonSquare
	}
	if b.Dim() != n || x.Dim() != n {
		return Stats{}, sparsemat.ErrDimensionMismatch
	}

	// r = b - A·x
	ax, err := sparsemat.MVP[V](mat, x.Values())
	if err != nil {
		return Stats{}, err
	}
	r := b.Clone()
	if err = r.Sub(vec.FromSlice(ax)); err != nil {
		return Stats{}, err
	}
	// p = r
	p := r.Clone()
	rr := vec.NormSquared[V](r)

	residual := math.Sqrt(float64(rr))
	for k := 0; k < cg.maxIter; k++ {
		// A·p
		ap, err := sparsemat.MVP[V](mat, p.Values())
		if err != nil {
			return Stats{}, err
		}
		matP := vec.FromSlice(ap)
		// alpha = r·r / (p · A·p)
		alpha := rr / vec.InnerProd[V](p, matP)
		// x += alpha·p
		if err = x.Add(p.Times(alpha)); err != nil {
			return Stats{}, err
		}
		// r -= alpha·(A·p)
		if err = r.Sub(matP.Times(alpha)); err != nil {
			return Stats{}, err
		}
		rrPrev := rr
		rr = vec.NormSquared[V](r)
		residual = math.Sqrt(float64(rr))
		if residual < cg.tol {
			return Stats{Converged: true, Iterations: k + 1, Residual: residual}, nil
		}
		// beta = r·r / prev(r·r); p = r + beta·p
		beta := rr / rrPrev
		p.Scale(beta)
		if err = p.Add(r); err != nil {
			return Stats{}, err
		}
	}
	return Stats{Converged: false, Iterations: cg.maxIter, Residual: residual}, nil
}
