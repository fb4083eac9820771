// SPDX-License-Identifier: MIT
// Package sparsemat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// sparsemat package and its sub-packages. All algorithms MUST return these
// sentinels and tests MUST check them via errors.Is. No algorithm should
// panic on user-triggered error conditions.
//
// The single exception is capacity exhaustion of the index type: producing
// the sentinel offset as a real position would silently corrupt every chain
// and bounds check downstream, so that guard aborts via panic on purpose
// (see rowindex.go and crs.go).

package sparsemat

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparsemat: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with opErrorf at the
// outer boundary — callers will still use errors.Is to match.

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a matrix product where a.NCols() != b.NRows(), or a matrix-vector
	// product against a vector shorter than the column range.
	ErrDimensionMismatch = errors.New("sparsemat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (conjugate gradient precondition).
	ErrNonSquare = errors.New("sparsemat: matrix is not square")

	// ErrColumnInfoNotAssembled is returned by IterCol when the column view
	// has not been built (or is inconsistent with the current entry count).
	// Call AssembleColumnInfo first.
	ErrColumnInfoNotAssembled = errors.New("sparsemat: column iterator not available - use AssembleColumnInfo()")

	// ErrRowsNotSorted signals that a row-export or row-string operation met
	// a row whose entries are not in ascending column order. Sort the row
	// first (SortRow/Sort).
	ErrRowsNotSorted = errors.New("sparsemat: row is not sorted by column")
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is/errors.As. Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
