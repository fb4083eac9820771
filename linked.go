// SPDX-License-Identifier: MIT

// Package sparsemat: incremental linked-list storage engine.
//
// Purpose:
//   - ListMat is the assembly-phase engine: entries append cheaply in any
//     order while a linked row index keeps per-row chains over two parallel
//     flat arrays (columns, values). Lookup and in-row append walk the
//     row's chain.
//   - An auxiliary column view (rows array + a second, column-keyed linked
//     index) is built on demand by AssembleColumnInfo; before that, IterCol
//     reports ErrColumnInfoNotAssembled.
//
// Complexity quicksheet:
//   - GetMut/Get/Set/AddTo: O(row chain length).
//   - IterRow: native, insertion order. Scale: O(nnz).
//   - AssembleColumnInfo: O(rows + nnz). SortRow: O(k log k), k = row length.
//
// Best use: building a matrix incrementally, then converting to CRS
// (NewCRSFromList) for read-mostly numeric kernels.

package sparsemat

import (
	"cmp"
	"iter"
	"slices"
)

// ListMat is the incremental linked-list sparse matrix format.
// The zero value is not ready for use; construct via NewListMat or EyeList.
type ListMat[V Value, I Index] struct {
	nCols int
	cols  []I
	vals  []V
	index rowIndexList[I]

	// Column view, valid only while len(rows) == len(cols).
	rows     []I // owning row of each slot
	colIndex rowIndexList[I]
}

// NewListMat returns an empty matrix with space reserved for cap non-zero
// entries. The capacity is a hint, never a hard limit.
func NewListMat[V Value, I Index](cap int) *ListMat[V, I] {
	return &ListMat[V, I]{
		cols:  make([]I, 0, cap),
		vals:  make([]V, 0, cap),
		index: newRowIndexList[I](cap),
	}
}

// EyeList returns the dim×dim identity matrix in linked-list format.
func EyeList[V Value, I Index](dim int) *ListMat[V, I] {
	m := NewListMat[V, I](dim)
	EyeInto[V](m, dim)
	return m
}

// Clone returns an independent deep copy. The column view, if assembled, is
// cloned along with it.
func (m *ListMat[V, I]) Clone() *ListMat[V, I] {
	out := &ListMat[V, I]{
		nCols:    m.nCols,
		cols:     slices.Clone(m.cols),
		vals:     slices.Clone(m.vals),
		index:    m.index.clone(),
		rows:     slices.Clone(m.rows),
		colIndex: m.colIndex.clone(),
	}
	return out
}

// findSlot walks row i's chain comparing columns. Reports false when the
// entry (i, j) does not exist.
func (m *ListMat[V, I]) findSlot(i, j int) (int, bool) {
	col := I(j)
	for slot := range m.index.iterRow(i) {
		if m.cols[slot] == col {
			return slot, true
		}
	}
	return 0, false
}

// push appends a new entry at (i, j) and returns its slot.
func (m *ListMat[V, I]) push(i, j int, val V) int {
	if j >= m.nCols {
		m.nCols = j + 1
	}
	slot := m.index.push(i)
	m.cols = append(m.cols, I(j))
	m.vals = append(m.vals, val)
	return slot
}

// NRows returns the number of rows.
func (m *ListMat[V, I]) NRows() int { return m.index.nRows() }

// NCols returns one plus the maximum column index ever written.
func (m *ListMat[V, I]) NCols() int { return m.nCols }

// NNZ returns the number of stored entries.
func (m *ListMat[V, I]) NNZ() int { return len(m.cols) }

// Get returns the value at (i, j), or zero if the entry does not exist.
func (m *ListMat[V, I]) Get(i, j int) V {
	if slot, ok := m.findSlot(i, j); ok {
		return m.vals[slot]
	}
	var zero V
	return zero
}

// GetMut returns a mutable handle to (i, j), appending a zero entry first
// when the cell is absent.
func (m *ListMat[V, I]) GetMut(i, j int) *V {
	slot, ok := m.findSlot(i, j)
	if !ok {
		var zero V
		slot = m.push(i, j, zero)
	}
	return &m.vals[slot]
}

// Scale multiplies every stored value by factor, in place.
func (m *ListMat[V, I]) Scale(factor V) {
	for k := range m.vals {
		m.vals[k] *= factor
	}
}

// IterRow yields (col, value) pairs of row i in insertion order.
func (m *ListMat[V, I]) IterRow(i int) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for slot := range m.index.iterRow(i) {
			if !yield(int(m.cols[slot]), m.vals[slot]) {
				return
			}
		}
	}
}

// Iter yields every stored entry grouped by row, insertion order within a
// row.
func (m *ListMat[V, I]) Iter() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		for row, slot := range m.index.all() {
			if !yield(Entry[V]{Row: row, Col: int(m.cols[slot]), Val: m.vals[slot]}) {
				return
			}
		}
	}
}

// SortRow sorts row i's entries by ascending column: collect, sort, write
// back over the same chain slots. Insertion order of the chain itself is
// untouched; only the (col, value) payloads move.
func (m *ListMat[V, I]) SortRow(i int) {
	pairs := collectRowPairs[V, I](m, i)
	slots := make([]int, 0, len(pairs))
	for slot := range m.index.iterRow(i) {
		slots = append(slots, slot)
	}
	for k, p := range pairs {
		m.cols[slots[k]] = p.col
		m.vals[slots[k]] = p.val
	}
}

// Sort sorts every row by ascending column.
func (m *ListMat[V, I]) Sort() {
	for i := 0; i < m.NRows(); i++ {
		m.SortRow(i)
	}
}

// AssembleColumnInfo builds the column view in one pass: record each slot's
// owning row, then chain every slot under its column in a second linked
// index. The view is rebuilt from scratch on every call, so re-assembling
// after mutation is safe. Mutating the matrix afterwards leaves the view
// stale until the next call.
func (m *ListMat[V, I]) AssembleColumnInfo() {
	m.rows = make([]I, len(m.cols))
	m.colIndex = newRowIndexList[I](len(m.cols))
	for row, slot := range m.index.all() {
		m.rows[slot] = I(row)
	}
	for _, col := range m.cols {
		m.colIndex.push(int(col))
	}
}

// IterCol yields (row, value) pairs of column j, in slot (insertion) order.
// Fails with ErrColumnInfoNotAssembled when the column view is missing or
// out of date with the entry count.
func (m *ListMat[V, I]) IterCol(j int) (iter.Seq2[int, V], error) {
	if len(m.rows) != len(m.cols) {
		return nil, ErrColumnInfoNotAssembled
	}
	return func(yield func(int, V) bool) {
		for slot := range m.colIndex.iterRow(j) {
			if !yield(int(m.rows[slot]), m.vals[slot]) {
				return
			}
		}
	}, nil
}

// ---------- operator surface (delegates to the shared kernels) ----------

// Set writes v at (i, j), replacing any existing value.
func (m *ListMat[V, I]) Set(i, j int, v V) { Set(m, i, j, v) }

// AddTo accumulates v into (i, j).
func (m *ListMat[V, I]) AddTo(i, j int, v V) { AddTo(m, i, j, v) }

// Add accumulates rhs into m: m += rhs.
func (m *ListMat[V, I]) Add(rhs *ListMat[V, I]) { Add[V](m, rhs) }

// Sub subtracts rhs from m: m -= rhs.
func (m *ListMat[V, I]) Sub(rhs *ListMat[V, I]) { Sub[V](m, rhs) }

// Plus returns a new matrix m + rhs; neither operand is mutated.
func (m *ListMat[V, I]) Plus(rhs *ListMat[V, I]) *ListMat[V, I] {
	out := m.Clone()
	out.Add(rhs)
	return out
}

// Minus returns a new matrix m - rhs; neither operand is mutated.
func (m *ListMat[V, I]) Minus(rhs *ListMat[V, I]) *ListMat[V, I] {
	out := m.Clone()
	out.Sub(rhs)
	return out
}

// Times returns a new matrix m scaled by factor; m is not mutated.
func (m *ListMat[V, I]) Times(factor V) *ListMat[V, I] {
	out := m.Clone()
	out.Scale(factor)
	return out
}

// MVP computes m·rhs.
func (m *ListMat[V, I]) MVP(rhs []V) ([]V, error) { return MVP[V](m, rhs) }

// Transpose returns a new matrix with every entry's row and column swapped.
func (m *ListMat[V, I]) Transpose() *ListMat[V, I] {
	out := NewListMat[V, I](m.NNZ())
	TransposeInto[V](m, out)
	return out
}

// IsSymmetric reports whether m equals its transpose.
func (m *ListMat[V, I]) IsSymmetric() bool { return IsSymmetric[V](m) }

// Density returns nnz over rows*cols.
func (m *ListMat[V, I]) Density() float64 { return Density[V](m) }

// Sparsity returns 1 - Density.
func (m *ListMat[V, I]) Sparsity() float64 { return Sparsity[V](m) }

// ---------- shared row-sort helper ----------

type colVal[V Value, I Index] struct {
	col I
	val V
}

// collectRowPairs materializes row i of m as (col, value) pairs sorted by
// ascending column. The matrix is not mutated.
func collectRowPairs[V Value, I Index](m Matrix[V], i int) []colVal[V, I] {
	var pairs []colVal[V, I]
	for j, v := range m.IterRow(i) {
		pairs = append(pairs, colVal[V, I]{col: I(j), val: v})
	}
	slices.SortFunc(pairs, func(a, b colVal[V, I]) int {
		return cmp.Compare(a.col, b.col)
	})
	return pairs
}
