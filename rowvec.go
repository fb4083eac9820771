// SPDX-License-Identifier: MIT

// Package sparsemat: per-row dynamic-array storage engine.
//
// Purpose:
//   - RowVecMat stores one dynamic column array and one value array per row.
//     No shared offset table, the simplest invariants of the three engines,
//     at the cost of at least two allocations per new row.
//   - Appends are O(1) amortized per row; lookup scans the row. Column
//     traversal is not supported — convert or use another engine when a
//     column view is needed.
//
// Best use: simplicity, small matrices, row-append-heavy workloads.

package sparsemat

import (
	"iter"
	"slices"
)

// RowVecMat is the row-of-arrays sparse matrix format.
type RowVecMat[V Value, I Index] struct {
	nCols int
	nnz   int
	cols  [][]I
	vals  [][]V
}

// NewRowVecMat returns an empty matrix with space reserved for cap rows.
func NewRowVecMat[V Value, I Index](cap int) *RowVecMat[V, I] {
	return &RowVecMat[V, I]{
		cols: make([][]I, 0, cap),
		vals: make([][]V, 0, cap),
	}
}

// EyeRowVec returns the dim×dim identity matrix in row-of-arrays format.
func EyeRowVec[V Value, I Index](dim int) *RowVecMat[V, I] {
	m := NewRowVecMat[V, I](dim)
	EyeInto[V](m, dim)
	return m
}

// Clone returns an independent deep copy.
func (m *RowVecMat[V, I]) Clone() *RowVecMat[V, I] {
	out := &RowVecMat[V, I]{
		nCols: m.nCols,
		nnz:   m.nnz,
		cols:  make([][]I, len(m.cols)),
		vals:  make([][]V, len(m.vals)),
	}
	for i := range m.cols {
		out.cols[i] = slices.Clone(m.cols[i])
		out.vals[i] = slices.Clone(m.vals[i])
	}
	return out
}

// findPos scans row i for column j; the position is relative to the row.
func (m *RowVecMat[V, I]) findPos(i, j int) (int, bool) {
	if i < 0 || i >= len(m.cols) {
		return 0, false
	}
	col := I(j)
	for pos, c := range m.cols[i] {
		if c == col {
			return pos, true
		}
	}
	return 0, false
}

// push appends a new entry to row i, growing the row table as needed.
func (m *RowVecMat[V, I]) push(i, j int, val V) int {
	for i >= len(m.cols) {
		m.cols = append(m.cols, nil)
		m.vals = append(m.vals, nil)
	}
	if j >= m.nCols {
		m.nCols = j + 1
	}
	pos := len(m.cols[i])
	m.cols[i] = append(m.cols[i], I(j))
	m.vals[i] = append(m.vals[i], val)
	m.nnz++
	return pos
}

// NRows returns the number of rows.
func (m *RowVecMat[V, I]) NRows() int { return len(m.cols) }

// NCols returns one plus the maximum column index ever written.
func (m *RowVecMat[V, I]) NCols() int { return m.nCols }

// NNZ returns the number of stored entries.
func (m *RowVecMat[V, I]) NNZ() int { return m.nnz }

// Get returns the value at (i, j), or zero if the entry does not exist.
func (m *RowVecMat[V, I]) Get(i, j int) V {
	if pos, ok := m.findPos(i, j); ok {
		return m.vals[i][pos]
	}
	var zero V
	return zero
}

// GetMut returns a mutable handle to (i, j), appending a zero entry first
// when the cell is absent.
func (m *RowVecMat[V, I]) GetMut(i, j int) *V {
	pos, ok := m.findPos(i, j)
	if !ok {
		pos = m.push(i, j, 0)
	}
	return &m.vals[i][pos]
}

// Scale multiplies every stored value by factor, in place.
func (m *RowVecMat[V, I]) Scale(factor V) {
	for i := range m.vals {
		for k := range m.vals[i] {
			m.vals[i][k] *= factor
		}
	}
}

// IterRow yields (col, value) pairs of row i in insertion order.
func (m *RowVecMat[V, I]) IterRow(i int) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		if i < 0 || i >= len(m.cols) {
			return
		}
		for pos, c := range m.cols[i] {
			if !yield(int(c), m.vals[i][pos]) {
				return
			}
		}
	}
}

// Iter yields every stored entry grouped by row.
func (m *RowVecMat[V, I]) Iter() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		for i := range m.cols {
			for pos, c := range m.cols[i] {
				if !yield(Entry[V]{Row: i, Col: int(c), Val: m.vals[i][pos]}) {
					return
				}
			}
		}
	}
}

// ---------- operator surface (delegates to the shared kernels) ----------

// Set writes v at (i, j), replacing any existing value.
func (m *RowVecMat[V, I]) Set(i, j int, v V) { Set(m, i, j, v) }

// AddTo accumulates v into (i, j).
func (m *RowVecMat[V, I]) AddTo(i, j int, v V) { AddTo(m, i, j, v) }

// Add accumulates rhs into m: m += rhs.
func (m *RowVecMat[V, I]) Add(rhs *RowVecMat[V, I]) { Add[V](m, rhs) }

// Sub subtracts rhs from m: m -= rhs.
func (m *RowVecMat[V, I]) Sub(rhs *RowVecMat[V, I]) { Sub[V](m, rhs) }

// Plus returns a new matrix m + rhs; neither operand is mutated.
func (m *RowVecMat[V, I]) Plus(rhs *RowVecMat[V, I]) *RowVecMat[V, I] {
	out := m.Clone()
	out.Add(rhs)
	return out
}

// Minus returns a new matrix m - rhs; neither operand is mutated.
func (m *RowVecMat[V, I]) Minus(rhs *RowVecMat[V, I]) *RowVecMat[V, I] {
	out := m.Clone()
	out.Sub(rhs)
	return out
}

// Times returns a new matrix m scaled by factor; m is not mutated.
func (m *RowVecMat[V, I]) Times(factor V) *RowVecMat[V, I] {
	out := m.Clone()
	out.Scale(factor)
	return out
}

// MVP computes m·rhs.
func (m *RowVecMat[V, I]) MVP(rhs []V) ([]V, error) { return MVP[V](m, rhs) }

// Transpose returns a new matrix with every entry's row and column swapped.
func (m *RowVecMat[V, I]) Transpose() *RowVecMat[V, I] {
	out := NewRowVecMat[V, I](m.NCols())
	TransposeInto[V](m, out)
	return out
}

// IsSymmetric reports whether m equals its transpose.
func (m *RowVecMat[V, I]) IsSymmetric() bool { return IsSymmetric[V](m) }

// Density returns nnz over rows*cols.
func (m *RowVecMat[V, I]) Density() float64 { return Density[V](m) }

// Sparsity returns 1 - Density.
func (m *RowVecMat[V, I]) Sparsity() float64 { return Sparsity[V](m) }
