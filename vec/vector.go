// SPDX-License-Identifier: MIT

// Package vec provides the vector collaborators of the sparse matrix
// engines: a contiguous dense container with bounds-extending writes and a
// simple sparse index/value container.
//
// Purpose:
//   - One small Vector contract consumed by matrix-vector products and the
//     iterative solver; algorithms written against it run on both
//     containers.
//   - Growth-on-write semantics: writing index i beyond the current length
//     extends the container, zero-filling intermediate slots. Reads beyond
//     the length panic the way slice indexing does; only writes grow.
//
// Complexity quicksheet:
//   - Dense: Get/GetMut O(1). Sparse: Get/GetMut O(nnz) linear scan (the
//     simple layout is the point; see sparse.go).

package vec

import (
	"iter"
	"math"

	"github.com/katalvlaran/sparsemat"
)

// Vector is the capability contract shared by the vector containers.
type Vector[V sparsemat.Value] interface {
	// Dim returns the dimension (one plus the highest index ever written).
	Dim() int

	// Get returns the value at position i.
	Get(i int) V

	// GetMut returns a mutable handle to position i, extending the
	// container zero-filled when i is beyond the current dimension.
	GetMut(i int) *V

	// Iter yields all Dim() values in index order, including implicit
	// zeros.
	Iter() iter.Seq[V]

	// Add accumulates rhs element-wise; ErrDimensionMismatch when the
	// receiver is shorter than rhs.
	Add(rhs Vector[V]) error

	// Sub subtracts rhs element-wise; same dimension rule as Add.
	Sub(rhs Vector[V]) error

	// Scale multiplies every value in place.
	Scale(factor V)
}

// Set writes v at position i through GetMut.
func Set[V sparsemat.Value](vec Vector[V], i int, v V) {
	*vec.GetMut(i) = v
}

// AddTo accumulates v into position i through GetMut.
func AddTo[V sparsemat.Value](vec Vector[V], i int, v V) {
	*vec.GetMut(i) += v
}

// InnerProd computes the inner product of a and b over their common range
// (the shorter dimension, matching zip semantics).
func InnerProd[V sparsemat.Value](a, b Vector[V]) V {
	n := min(a.Dim(), b.Dim())
	var sum V
	for i := 0; i < n; i++ {
		sum += a.Get(i) * b.Get(i)
	}
	return sum
}

// NormSquared computes the squared L2 norm.
func NormSquared[V sparsemat.Value](v Vector[V]) V {
	var sum V
	for x := range v.Iter() {
		sum += x * x
	}
	return sum
}

// Norm computes the L2 norm.
func Norm[V sparsemat.Float](v Vector[V]) float64 {
	return math.Sqrt(float64(NormSquared[V](v)))
}

// Sum folds all values with +.
func Sum[V sparsemat.Value](v Vector[V]) V {
	return sparsemat.Sum(v.Iter())
}
