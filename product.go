// SPDX-License-Identifier: MIT

// Package sparsemat: sparse × sparse product.
//
// Purpose:
//   - Compute C = A × B with a sort-merge over row views of A and column
//     views of B: each row of A is materialized and sorted once (a copy —
//     operands are never mutated), then merged against every column of B
//     with an early cutoff on the sorted columns.
//
// Complexity:
//   - O(rows(A) × (sort of one row + matched entries per column of B)).

package sparsemat

import (
	"cmp"
	"slices"
)

// MulSparse computes dst = a × b and writes only non-zero sums into dst.
// Requirements: a.NCols() == b.NRows() (else ErrDimensionMismatch) and b's
// column view assembled (else ErrColumnInfoNotAssembled propagates from
// IterCol). dst should be empty and of the caller's preferred engine.
func MulSparse[V Value](a Matrix[V], b ColumnIterable[V], dst Matrix[V]) error {
	if a.NCols() != b.NRows() {
		return opErrorf(opMulSparse, ErrDimensionMismatch)
	}
	type pair struct {
		col int
		val V
	}
	for i := 0; i < a.NRows(); i++ {
		// Materialize and sort row i of A once; reused for every column of B.
		var row []pair
		for j, v := range a.IterRow(i) {
			row = append(row, pair{col: j, val: v})
		}
		if len(row) == 0 {
			continue
		}
		slices.SortFunc(row, func(x, y pair) int { return cmp.Compare(x.col, y.col) })
		for j := 0; j < b.NCols(); j++ {
			colSeq, err := b.IterCol(j)
			if err != nil {
				return opErrorf(opMulSparse, err)
			}
			var sum V
			for k, bval := range colSeq {
				// Early cutoff: the sorted row cannot match beyond col > k.
				for _, p := range row {
					if p.col > k {
						break
					}
					if p.col == k {
						sum += p.val * bval
						break
					}
				}
			}
			if sum != 0 {
				Set(dst, i, j, sum)
			}
		}
	}
	return nil
}
