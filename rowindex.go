// SPDX-License-Identifier: MIT

// Package sparsemat: linked row index (arena + index-based chains).
//
// Purpose:
//   - Track, for each row, the chain of slot positions its entries occupy in
//     the parallel column/value arrays an owning engine maintains in
//     lock-step. This is the insertion primitive for the incremental format.
//   - A classic arena layout: flat slices with index-based "pointers" and the
//     Unset sentinel in place of a nil reference. No heap links, no sharing;
//     the owning matrix holds the structure exclusively.
//
// Layout example:
//
//	rowStart = [0, 2, UNSET, 4, 3]
//	next     = [1, UNSET, UNSET, 5, 6, UNSET, UNSET]
//	-> row 0 holds two entries at slots 0 and 1
//	-> row 1 holds one entry at slot 2
//	-> row 2 is empty
//	-> row 3 holds entries at slots 4 and 6
//	-> row 4 holds entries at slots 3 and 5 (inserted before row 3's)
//
// Complexity quicksheet:
//   - push: O(chain length) — the tail is found by walking the chain. A tail
//     cache would make this O(1); the walk is kept because it reproduces the
//     reference layout with only two arrays. Iteration order within a row is
//     insertion order, and that order is an observable contract (column-sort
//     writeback and CRS conversion both depend on it).
//   - iterRow: O(chain length), restartable. all: O(rows + entries).

package sparsemat

import (
	"fmt"
	"iter"
)

// rowIndexList maps each row to a sentinel-terminated chain of slot
// positions. It never stores values itself; the owner keeps columns and
// values in parallel slices indexed by the returned slots.
type rowIndexList[I Index] struct {
	rowStart []I // first slot of each row, Unset when the row is empty
	next     []I // next slot in the same row, Unset at the chain tail
}

// newRowIndexList returns an index with space reserved for cap entries.
// The capacity is a hint, never a hard limit.
func newRowIndexList[I Index](cap int) rowIndexList[I] {
	return rowIndexList[I]{
		rowStart: make([]I, 0, cap),
		next:     make([]I, 0, cap),
	}
}

// nEntries returns the number of slots handed out so far.
func (l *rowIndexList[I]) nEntries() int {
	return len(l.next)
}

// nRows returns the number of rows the index currently spans.
func (l *rowIndexList[I]) nRows() int {
	return len(l.rowStart)
}

// push appends a new slot for row, growing the row table when row is beyond
// the current range (new rows start at the sentinel), and returns the slot's
// position in the owner's parallel arrays.
//
// Panics when the slot index would reach the sentinel: continuing would make
// a real offset equal to Unset and silently corrupt every chain-termination
// check. Choosing a wider Index type is the only remedy; this failure is
// intentionally fatal (see errors.go).
func (l *rowIndexList[I]) push(row int) int {
	unset := Unset[I]()
	for row >= len(l.rowStart) {
		l.rowStart = append(l.rowStart, unset)
	}
	slot := len(l.next)
	if uint64(slot) >= uint64(unset) {
		panic(fmt.Sprintf("sparsemat: maximum number of %d entries reached", unset))
	}
	l.next = append(l.next, unset)
	if l.rowStart[row] == unset {
		// First entry in this row.
		l.rowStart[row] = I(slot)
		return slot
	}
	// Walk the chain to its tail and append there.
	pos := l.rowStart[row]
	for l.next[pos] != unset {
		pos = l.next[pos]
	}
	l.next[pos] = I(slot)
	return slot
}

// iterRow returns a lazy, restartable sequence of the slot positions of row,
// in insertion order. Rows beyond the current range yield nothing.
func (l *rowIndexList[I]) iterRow(row int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if row < 0 || row >= len(l.rowStart) {
			return
		}
		unset := Unset[I]()
		for pos := l.rowStart[row]; pos != unset; pos = l.next[pos] {
			if !yield(int(pos)) {
				return
			}
		}
	}
}

// all returns a lazy sequence of (row, slot) pairs across every row in
// order, skipping empty rows. Equivalent to concatenating iterRow for each
// row.
func (l *rowIndexList[I]) all() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		unset := Unset[I]()
		for row := range l.rowStart {
			for pos := l.rowStart[row]; pos != unset; pos = l.next[pos] {
				if !yield(row, int(pos)) {
					return
				}
			}
		}
	}
}

// clone returns an independent deep copy.
func (l *rowIndexList[I]) clone() rowIndexList[I] {
	out := rowIndexList[I]{
		rowStart: make([]I, len(l.rowStart)),
		next:     make([]I, len(l.next)),
	}
	copy(out.rowStart, l.rowStart)
	copy(out.next, l.next)
	return out
}
