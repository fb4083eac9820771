// SPDX-License-Identifier: MIT

// Package sparsemat: the matrix capability contract.
//
// Purpose:
//   - Declare the small primitive set every storage engine must supply
//     (Matrix) plus the optional extension contracts (Sortable,
//     ColumnIterable) some algorithms require.
//   - Default composite algorithms (add, subtract, matrix-vector product,
//     transpose, symmetry check, density, row formatting, identity fill) are
//     free functions in kernels.go, written once against these primitives —
//     composition over inheritance, so "write once, specialize storage"
//     works without a type hierarchy.
//
// Semantics shared by all engines:
//   - The column count is derived: one plus the maximum column index ever
//     written. Absence of an entry is semantically zero. Writing an existing
//     (row, col) key replaces; at most one live value per key is ever
//     exposed through iteration.
//   - GetMut on a missing cell appends a zero-valued entry; it never inserts
//     in sorted position. Sortedness is the caller's responsibility via
//     SortRow/Sort.
//   - IterRow on a row beyond the current range yields an empty sequence,
//     uniformly across engines.

package sparsemat

import "iter"

// Entry is the atomic unit of sparse storage: one (row, col, value) triple.
type Entry[V Value] struct {
	Row, Col int
	Val      V
}

// Matrix is the primitive capability contract shared by all storage engines.
// Every composite algorithm in this package is derived solely from these
// methods; only performance differs between engines.
type Matrix[V Value] interface {
	// NRows returns the number of rows. O(1) for all engines.
	NRows() int

	// NCols returns one plus the maximum column index ever written. O(1).
	NCols() int

	// NNZ returns the number of stored (non-zero) entries. O(1).
	NNZ() int

	// Get returns the value at (i, j), or zero if no entry exists.
	// Cost: one row scan (engine-specific, see the engine docs).
	Get(i, j int) V

	// GetMut returns a mutable handle to the value at (i, j), appending a
	// zero-valued entry first when the cell is absent.
	GetMut(i, j int) *V

	// Scale multiplies every stored value by factor, in place. O(nnz).
	Scale(factor V)

	// IterRow returns a lazy, restartable sequence of (col, value) pairs of
	// row i, in the engine's native row order (insertion order unless the
	// row has been sorted). Rows out of range yield an empty sequence.
	IterRow(i int) iter.Seq2[int, V]

	// Iter returns a lazy sequence of every stored entry, grouped by row in
	// increasing row order; within a row the order matches IterRow.
	Iter() iter.Seq[Entry[V]]
}

// Sortable is the optional extension for engines that can reorder a row's
// entries by ascending column in place (collect-sort-writeback).
type Sortable[V Value] interface {
	Matrix[V]

	// SortRow sorts row i's entries by column, ascending. Sorting an
	// already-sorted row is a no-op by value and position.
	SortRow(i int)

	// Sort sorts every row.
	Sort()
}

// ColumnIterable is the optional extension for engines that can serve
// column-major traversal. The column view is an explicit build step:
// IterCol before AssembleColumnInfo fails with ErrColumnInfoNotAssembled
// rather than silently returning an empty sequence.
//
// The view is a snapshot. Mutating the matrix after assembly leaves it
// stale; there is no dirty tracking. Re-assemble after mutation.
type ColumnIterable[V Value] interface {
	Matrix[V]

	// AssembleColumnInfo builds the column-indexed view in one O(nnz) pass.
	// Safe to call again after mutation; the view is rebuilt from scratch.
	AssembleColumnInfo()

	// IterCol returns a lazy sequence of (row, value) pairs of column j, or
	// ErrColumnInfoNotAssembled when no consistent view is available.
	IterCol(j int) (iter.Seq2[int, V], error)
}
