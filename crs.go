// SPDX-License-Identifier: MIT

// Package sparsemat: compressed-row storage engine.
//
// Purpose:
//   - CRSMat is the read-mostly engine for numeric kernels: three parallel
//     dense arrays (values, columns, rowOffsets) give contiguous,
//     cache-friendly row traversal. rowOffsets has length rows+1 and is
//     monotonically non-decreasing; row i occupies
//     values[rowOffsets[i]:rowOffsets[i+1]].
//   - Bulk construction from the incremental engine (NewCRSFromList) is one
//     O(nnz) pass. Incremental insertion through GetMut works but shifts
//     the flat arrays and bumps every later offset — O(nnz) per new entry.
//   - The column view is a second compressed structure built by counting
//     entries per column and scattering (count-then-scatter, O(nnz)).
//
// Complexity quicksheet:
//   - Get: O(row length) linear scan. GetMut existing: same; missing:
//     O(nnz) insert. IterRow: contiguous slice walk.
//   - NewCRSFromList: O(nnz). AssembleColumnInfo: O(rows + cols + nnz).

package sparsemat

import (
	"fmt"
	"iter"
	"slices"
)

// CRSMat is the compressed-row sparse matrix format.
type CRSMat[V Value, I Index] struct {
	nRows, nCols int
	vals         []V
	cols         []I
	rowOffsets   []I // len nRows+1 once any entry exists

	// Column view (compressed by column), valid only while
	// len(rowsByCol) == len(cols).
	colOffsets []I
	rowsByCol  []I // owning row per column-ordered position
	slotByCol  []I // slot into vals/cols per column-ordered position
}

// NewCRSMat returns an empty matrix with space reserved for cap entries.
func NewCRSMat[V Value, I Index](cap int) *CRSMat[V, I] {
	return &CRSMat[V, I]{
		vals:       make([]V, 0, cap),
		cols:       make([]I, 0, cap),
		rowOffsets: make([]I, 0, cap+1),
	}
}

// NewCRSFromList builds a compressed-row instance from an incremental one in
// a single pass over rows in increasing order. Each row's entries keep the
// source's insertion order. The source's column view is never carried over
// (the repack invalidates its slot positions); assemble on the CRS instance
// when column traversal is needed.
func NewCRSFromList[V Value, I Index](src *ListMat[V, I]) *CRSMat[V, I] {
	nnz := src.NNZ()
	if nnz == 0 {
		return NewCRSMat[V, I](0)
	}
	out := &CRSMat[V, I]{
		nRows:      src.NRows(),
		nCols:      src.NCols(),
		vals:       make([]V, 0, nnz),
		cols:       make([]I, 0, nnz),
		rowOffsets: make([]I, 0, src.NRows()+1),
	}
	for i := 0; i < src.NRows(); i++ {
		out.rowOffsets = append(out.rowOffsets, I(len(out.cols)))
		for j, v := range src.IterRow(i) {
			out.cols = append(out.cols, I(j))
			out.vals = append(out.vals, v)
		}
	}
	out.rowOffsets = append(out.rowOffsets, I(len(out.cols)))
	return out
}

// EyeCRS returns the dim×dim identity matrix in compressed-row format,
// built through the cheap bulk path.
func EyeCRS[V Value, I Index](dim int) *CRSMat[V, I] {
	return NewCRSFromList(EyeList[V, I](dim))
}

// Clone returns an independent deep copy, column view included.
func (m *CRSMat[V, I]) Clone() *CRSMat[V, I] {
	return &CRSMat[V, I]{
		nRows:      m.nRows,
		nCols:      m.nCols,
		vals:       slices.Clone(m.vals),
		cols:       slices.Clone(m.cols),
		rowOffsets: slices.Clone(m.rowOffsets),
		colOffsets: slices.Clone(m.colOffsets),
		rowsByCol:  slices.Clone(m.rowsByCol),
		slotByCol:  slices.Clone(m.slotByCol),
	}
}

// rowSpan returns the [start, end) slot range of row i, or (0, 0) when the
// row is out of range.
func (m *CRSMat[V, I]) rowSpan(i int) (int, int) {
	if i < 0 || i >= m.nRows {
		return 0, 0
	}
	return int(m.rowOffsets[i]), int(m.rowOffsets[i+1])
}

// findSlot scans row i for column j. Reports false when absent.
func (m *CRSMat[V, I]) findSlot(i, j int) (int, bool) {
	start, end := m.rowSpan(i)
	col := I(j)
	for slot := start; slot < end; slot++ {
		if m.cols[slot] == col {
			return slot, true
		}
	}
	return 0, false
}

// push inserts a new entry at the end of row i, shifting the flat arrays
// and bumping every later offset. This is the expensive path; prefer bulk
// construction via NewCRSFromList.
func (m *CRSMat[V, I]) push(i, j int, val V) int {
	if j >= m.nCols {
		m.nCols = j + 1
	}
	if len(m.rowOffsets) == 0 {
		m.rowOffsets = make([]I, i+2)
	} else if i >= m.nRows {
		last := m.rowOffsets[len(m.rowOffsets)-1]
		for len(m.rowOffsets) < i+2 {
			m.rowOffsets = append(m.rowOffsets, last)
		}
	}
	if i >= m.nRows {
		m.nRows = i + 1
	}
	unset := Unset[I]()
	if uint64(len(m.vals)) >= uint64(unset) {
		panic(fmt.Sprintf("sparsemat: maximum number of %d entries reached", unset))
	}
	// Append at the row's end so within-row iteration keeps insertion order.
	slot := int(m.rowOffsets[i+1])
	m.cols = slices.Insert(m.cols, slot, I(j))
	m.vals = slices.Insert(m.vals, slot, val)
	for k := i + 1; k < len(m.rowOffsets); k++ {
		m.rowOffsets[k]++
	}
	return slot
}

// NRows returns the number of rows.
func (m *CRSMat[V, I]) NRows() int { return m.nRows }

// NCols returns one plus the maximum column index ever written.
func (m *CRSMat[V, I]) NCols() int { return m.nCols }

// NNZ returns the number of stored entries.
func (m *CRSMat[V, I]) NNZ() int { return len(m.cols) }

// Get returns the value at (i, j), or zero if the entry does not exist.
func (m *CRSMat[V, I]) Get(i, j int) V {
	if slot, ok := m.findSlot(i, j); ok {
		return m.vals[slot]
	}
	var zero V
	return zero
}

// GetMut returns a mutable handle to (i, j), inserting a zero entry when
// the cell is absent (O(nnz) shift — see push).
func (m *CRSMat[V, I]) GetMut(i, j int) *V {
	slot, ok := m.findSlot(i, j)
	if !ok {
		slot = m.push(i, j, 0)
	}
	return &m.vals[slot]
}

// Scale multiplies every stored value by factor, in place.
func (m *CRSMat[V, I]) Scale(factor V) {
	for k := range m.vals {
		m.vals[k] *= factor
	}
}

// IterRow yields (col, value) pairs of row i, a contiguous slice walk.
func (m *CRSMat[V, I]) IterRow(i int) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		start, end := m.rowSpan(i)
		for slot := start; slot < end; slot++ {
			if !yield(int(m.cols[slot]), m.vals[slot]) {
				return
			}
		}
	}
}

// Iter yields every stored entry in row-major order.
func (m *CRSMat[V, I]) Iter() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		for i := 0; i < m.nRows; i++ {
			start, end := m.rowSpan(i)
			for slot := start; slot < end; slot++ {
				if !yield(Entry[V]{Row: i, Col: int(m.cols[slot]), Val: m.vals[slot]}) {
					return
				}
			}
		}
	}
}

// SortRow sorts row i's entries by ascending column, in place within the
// row's contiguous span.
func (m *CRSMat[V, I]) SortRow(i int) {
	pairs := collectRowPairs[V, I](m, i)
	start, _ := m.rowSpan(i)
	for k, p := range pairs {
		m.cols[start+k] = p.col
		m.vals[start+k] = p.val
	}
}

// Sort sorts every row by ascending column.
func (m *CRSMat[V, I]) Sort() {
	for i := 0; i < m.nRows; i++ {
		m.SortRow(i)
	}
}

// AssembleColumnInfo builds the compressed column view: count entries per
// column, prefix-sum into colOffsets, then scatter (row, slot) pairs in one
// row-major pass — so each column's entries come out in ascending row
// order. Rebuilt from scratch on every call; stale after later mutation.
func (m *CRSMat[V, I]) AssembleColumnInfo() {
	counts := make([]int, m.nCols)
	for _, col := range m.cols {
		counts[col]++
	}
	m.colOffsets = make([]I, m.nCols+1)
	for j := 0; j < m.nCols; j++ {
		m.colOffsets[j+1] = m.colOffsets[j] + I(counts[j])
	}
	m.rowsByCol = make([]I, len(m.cols))
	m.slotByCol = make([]I, len(m.cols))
	cursor := make([]int, m.nCols)
	for i := 0; i < m.nRows; i++ {
		start, end := m.rowSpan(i)
		for slot := start; slot < end; slot++ {
			j := int(m.cols[slot])
			pos := int(m.colOffsets[j]) + cursor[j]
			m.rowsByCol[pos] = I(i)
			m.slotByCol[pos] = I(slot)
			cursor[j]++
		}
	}
}

// IterCol yields (row, value) pairs of column j in ascending row order.
// Fails with ErrColumnInfoNotAssembled when the view is missing or out of
// date with the entry count.
func (m *CRSMat[V, I]) IterCol(j int) (iter.Seq2[int, V], error) {
	if len(m.rowsByCol) != len(m.cols) {
		return nil, ErrColumnInfoNotAssembled
	}
	return func(yield func(int, V) bool) {
		if j < 0 || j >= m.nCols {
			return
		}
		start, end := int(m.colOffsets[j]), int(m.colOffsets[j+1])
		for pos := start; pos < end; pos++ {
			if !yield(int(m.rowsByCol[pos]), m.vals[m.slotByCol[pos]]) {
				return
			}
		}
	}, nil
}

// ---------- operator surface (delegates to the shared kernels) ----------

// Set writes v at (i, j), replacing any existing value.
func (m *CRSMat[V, I]) Set(i, j int, v V) { Set(m, i, j, v) }

// AddTo accumulates v into (i, j).
func (m *CRSMat[V, I]) AddTo(i, j int, v V) { AddTo(m, i, j, v) }

// Add accumulates rhs into m: m += rhs. New positions pay the CRS shift
// cost; adding matrices with identical sparsity patterns stays cheap.
func (m *CRSMat[V, I]) Add(rhs *CRSMat[V, I]) { Add[V](m, rhs) }

// Sub subtracts rhs from m: m -= rhs.
func (m *CRSMat[V, I]) Sub(rhs *CRSMat[V, I]) { Sub[V](m, rhs) }

// Plus returns a new matrix m + rhs; neither operand is mutated.
func (m *CRSMat[V, I]) Plus(rhs *CRSMat[V, I]) *CRSMat[V, I] {
	out := m.Clone()
	out.Add(rhs)
	return out
}

// Minus returns a new matrix m - rhs; neither operand is mutated.
func (m *CRSMat[V, I]) Minus(rhs *CRSMat[V, I]) *CRSMat[V, I] {
	out := m.Clone()
	out.Sub(rhs)
	return out
}

// Times returns a new matrix m scaled by factor; m is not mutated.
func (m *CRSMat[V, I]) Times(factor V) *CRSMat[V, I] {
	out := m.Clone()
	out.Scale(factor)
	return out
}

// MVP computes m·rhs.
func (m *CRSMat[V, I]) MVP(rhs []V) ([]V, error) { return MVP[V](m, rhs) }

// Transpose returns a new matrix with every entry's row and column swapped.
// Built through the linked engine then repacked, avoiding the quadratic
// insert-shift a direct CRS fill would pay.
func (m *CRSMat[V, I]) Transpose() *CRSMat[V, I] {
	tmp := NewListMat[V, I](m.NNZ())
	TransposeInto[V](m, tmp)
	return NewCRSFromList(tmp)
}

// IsSymmetric reports whether m equals its transpose.
func (m *CRSMat[V, I]) IsSymmetric() bool { return IsSymmetric[V](m) }

// Density returns nnz over rows*cols.
func (m *CRSMat[V, I]) Density() float64 { return Density[V](m) }

// Sparsity returns 1 - Density.
func (m *CRSMat[V, I]) Sparsity() float64 { return Sparsity[V](m) }
