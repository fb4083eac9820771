// SPDX-License-Identifier: MIT

// Package export emits sparse matrices as plain text or portable bitmaps.
//
// Purpose:
//   - WriteRows: one line per row, space-separated values including explicit
//     zeros — the human-readable dump.
//   - WritePBM: NetPBM "P1" bitmap of the sparsity pattern, one presence bit
//     per cell.
//
// Both require rows sorted by ascending column and return ErrRowsNotSorted
// otherwise; nothing is emitted past the offending row.

package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsemat"
)

// WriteRows writes m as a plain-text row dump: one row per line, every
// column's value (zeros included) separated by single spaces.
//
// Requires every row sorted by ascending column (SortRow/Sort first);
// returns ErrRowsNotSorted wrapped with the offending row otherwise.
func WriteRows[V sparsemat.Value](w io.Writer, m sparsemat.Matrix[V]) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.NRows(); i++ {
		line, err := sparsemat.RowString[V](m, i)
		if err != nil {
			return fmt.Errorf("export: row %d: %w", i, err)
		}
		if _, err = bw.WriteString(line); err != nil {
			return err
		}
		if err = bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePBM writes the sparsity pattern of m as a portable bitmap: the "P1"
// magic, a "<cols> <rows>" dimension line, then one line per row of 0/1
// presence bits (1 where an entry is stored, regardless of its value).
//
// Requires every row sorted by ascending column; returns ErrRowsNotSorted
// wrapped with the offending row otherwise.
func WritePBM[V sparsemat.Value](w io.Writer, m sparsemat.Matrix[V]) error {
	bw := bufio.NewWriter(w)
	rows, cols := m.NRows(), m.NCols()
	if _, err := fmt.Fprintf(bw, "P1\n%d %d\n", cols, rows); err != nil {
		return err
	}
	bits := make([]byte, cols)
	for i := 0; i < rows; i++ {
		for k := range bits {
			bits[k] = '0'
		}
		cursor := 0
		for j := range m.IterRow(i) {
			if j < cursor {
				return fmt.Errorf("export: row %d: %w", i, sparsemat.ErrRowsNotSorted)
			}
			bits[j] = '1'
			cursor = j + 1
		}
		for k, bit := range bits {
			if k > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if err := bw.WriteByte(bit); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
