// SPDX-License-Identifier: MIT

// Package sparsemat: default algorithms over the Matrix contract.
//
// Purpose:
//   - Implement every composite operation exactly once against the primitive
//     set, regardless of storage engine. Engines additionally expose these
//     as thin methods (see the engine files) so call sites read naturally
//     without spelling out type arguments.
//   - Receiver cost is NOT symmetric: Add/Sub accumulate into dst through
//     GetMut, so the destination engine dictates the cost of each write
//     (row-scan for linked/row-array formats, plus an O(nnz) shift for CRS
//     when a new position is created).
//
// Determinism:
//   - All loops are fixed-order (row 0..n, then the engine's row order).
//     Matrix-vector products visit entries in whatever order the engine's
//     row iterator yields; in exact arithmetic the result is iteration-order
//     independent, floating-point rounding is not. Sort rows first when a
//     canonical rounding is required.

package sparsemat

import (
	"fmt"
	"strings"
)

// Operation tags for unified error wrapping (no magic strings at call sites).
const (
	opMVP       = "MVP"
	opRowString = "RowString"
	opMulSparse = "MulSparse"
)

// Set writes v at (i, j) through GetMut, replacing any existing value.
func Set[V Value](m Matrix[V], i, j int, v V) {
	*m.GetMut(i, j) = v
}

// AddTo accumulates v into the entry at (i, j), materializing it if absent.
func AddTo[V Value](m Matrix[V], i, j int, v V) {
	*m.GetMut(i, j) += v
}

// Add accumulates every entry of rhs into dst: dst += rhs.
// Complexity: O(nnz(rhs)) writes, each at the dst engine's GetMut cost.
func Add[V Value](dst, rhs Matrix[V]) {
	for e := range rhs.Iter() {
		*dst.GetMut(e.Row, e.Col) += e.Val
	}
}

// Sub subtracts every entry of rhs from dst: dst -= rhs.
func Sub[V Value](dst, rhs Matrix[V]) {
	for e := range rhs.Iter() {
		*dst.GetMut(e.Row, e.Col) -= e.Val
	}
}

// TransposeInto re-inserts every entry of src into dst with row and column
// swapped. dst should be empty and pre-sized to nnz(src).
func TransposeInto[V Value](src, dst Matrix[V]) {
	for e := range src.Iter() {
		Set(dst, e.Col, e.Row, e.Val)
	}
}

// EyeInto writes dim unit entries on the diagonal of dst. The only place
// zero-valued cells are ever materialized deliberately is this kind of
// explicit construction.
func EyeInto[V Value](dst Matrix[V], dim int) {
	for i := 0; i < dim; i++ {
		Set(dst, i, i, V(1))
	}
}

// IsSymmetric reports whether every stored (i, j, v) satisfies
// Get(j, i) == v. Short-circuits on the first mismatch.
// Complexity: O(nnz) lookups, each at the engine's Get cost.
func IsSymmetric[V Value](m Matrix[V]) bool {
	for e := range m.Iter() {
		if m.Get(e.Col, e.Row) != e.Val {
			return false
		}
	}
	return true
}

// Density returns nnz / (rows*cols). Degenerate shapes (rows*cols == 0)
// follow IEEE 754 division: an empty matrix yields NaN, not a panic.
func Density[V Value](m Matrix[V]) float64 {
	nnz := float64(m.NNZ())
	return nnz / float64(m.NRows()*m.NCols())
}

// Sparsity returns 1 - Density(m).
func Sparsity[V Value](m Matrix[V]) float64 {
	return 1.0 - Density[V](m)
}

// MVP computes the matrix-vector product m·rhs, producing one output value
// per row (rows with no entries produce zero). rhs must cover the column
// range; a shorter vector is ErrDimensionMismatch.
// Complexity: O(rows + nnz).
func MVP[V Value](m Matrix[V], rhs []V) ([]V, error) {
	if len(rhs) < m.NCols() {
		return nil, opErrorf(opMVP, ErrDimensionMismatch)
	}
	out := make([]V, m.NRows())
	for i := range out {
		var sum V
		for j, v := range m.IterRow(i) {
			sum += v * rhs[j]
		}
		out[i] = sum
	}
	return out, nil
}

// RowString renders row i as space-separated values including explicit
// zeros, one value per column up to NCols. The row must be sorted by column
// ascending; violations return ErrRowsNotSorted instead of corrupt output.
func RowString[V Value](m Matrix[V], i int) (string, error) {
	var sb strings.Builder
	cursor := 0
	for j, v := range m.IterRow(i) {
		if j < cursor {
			return "", opErrorf(opRowString, ErrRowsNotSorted)
		}
		for ; cursor < j; cursor++ {
			sb.WriteString("0 ")
		}
		fmt.Fprintf(&sb, "%v ", v)
		cursor = j + 1
	}
	for ; cursor < m.NCols(); cursor++ {
		sb.WriteString("0 ")
	}
	return strings.TrimRight(sb.String(), " "), nil
}
