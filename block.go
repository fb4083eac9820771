// SPDX-License-Identifier: MIT

// Package sparsemat: block-partitioned wrapper.
//
// Purpose:
//   - BlockMat shards one storage engine by row range: N sub-matrices of
//     equal declared row capacity, global row r mapping to block
//     r / rowsPerBlock at local row r % rowsPerBlock. Each block can be
//     processed independently, which is what ParMVP exploits.
//   - A block is either "full" (every declared row slot used) or it is the
//     unique final non-empty block; NRows locates the last structurally
//     non-empty block ("non-empty" is structural, not zero-value, emptiness).
//
// Concurrency:
//   - The wrapper itself is not synchronized. ParMVP is safe because each
//     worker only reads its own block and writes its own output segment;
//     never call the aggregation methods (NRows/NCols/NNZ) concurrently
//     with mutation.

package sparsemat

import (
	"iter"

	"golang.org/x/sync/errgroup"
)

// BlockMat wraps an ordered sequence of sub-matrices of one engine type,
// presenting them as a single row-sharded matrix.
type BlockMat[V Value, M Matrix[V]] struct {
	rowsPerBlock int
	blocks       []M
}

// NewBlockMat partitions maxRows rows into nBlocks blocks of
// maxRows/nBlocks rows each, allocating every block through alloc (the
// engine constructor, e.g. func(cap int) *CRSMat[...]). The per-block
// capacity is a hint, never a hard limit.
func NewBlockMat[V Value, M Matrix[V]](nBlocks, maxRows int, alloc func(cap int) M) *BlockMat[V, M] {
	rowsPerBlock := maxRows / nBlocks
	blocks := make([]M, nBlocks)
	for b := range blocks {
		blocks[b] = alloc(rowsPerBlock)
	}
	return &BlockMat[V, M]{rowsPerBlock: rowsPerBlock, blocks: blocks}
}

// NBlocks returns the number of sub-matrices.
func (m *BlockMat[V, M]) NBlocks() int { return len(m.blocks) }

// Block returns the b-th sub-matrix for independent per-block processing.
func (m *BlockMat[V, M]) Block(b int) M { return m.blocks[b] }

// blockAndRow maps a global row to (block index, local row). Rows beyond
// the declared range clamp to the last block.
func (m *BlockMat[V, M]) blockAndRow(row int) (int, int) {
	b := row / m.rowsPerBlock
	if b >= len(m.blocks) {
		b = len(m.blocks) - 1
	}
	return b, row - b*m.rowsPerBlock
}

// NRows returns rowsPerBlock times the index of the last structurally
// non-empty block, plus that block's own row count.
func (m *BlockMat[V, M]) NRows() int {
	last := 0
	for b := range m.blocks {
		if m.blocks[b].NRows() == 0 {
			break
		}
		last = b
	}
	return last*m.rowsPerBlock + m.blocks[last].NRows()
}

// NCols returns the maximum column count over all blocks.
func (m *BlockMat[V, M]) NCols() int {
	max := 0
	for _, blk := range m.blocks {
		if n := blk.NCols(); n > max {
			max = n
		}
	}
	return max
}

// NNZ returns the total number of stored entries across blocks.
func (m *BlockMat[V, M]) NNZ() int {
	total := 0
	for _, blk := range m.blocks {
		total += blk.NNZ()
	}
	return total
}

// Get delegates to the owning block at the local row.
func (m *BlockMat[V, M]) Get(i, j int) V {
	b, row := m.blockAndRow(i)
	return m.blocks[b].Get(row, j)
}

// GetMut delegates to the owning block at the local row.
func (m *BlockMat[V, M]) GetMut(i, j int) *V {
	b, row := m.blockAndRow(i)
	return m.blocks[b].GetMut(row, j)
}

// Scale scales every block in place.
func (m *BlockMat[V, M]) Scale(factor V) {
	for _, blk := range m.blocks {
		blk.Scale(factor)
	}
}

// IterRow delegates to the owning block at the local row.
func (m *BlockMat[V, M]) IterRow(i int) iter.Seq2[int, V] {
	b, row := m.blockAndRow(i)
	return m.blocks[b].IterRow(row)
}

// Iter yields every stored entry, block by block, with rows translated back
// to global indices.
func (m *BlockMat[V, M]) Iter() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		for b, blk := range m.blocks {
			offset := b * m.rowsPerBlock
			for e := range blk.Iter() {
				if !yield(Entry[V]{Row: offset + e.Row, Col: e.Col, Val: e.Val}) {
					return
				}
			}
		}
	}
}

// ParMVP computes the matrix-vector product with one worker per block
// (fork-join). Workers only read their own block and write their own output
// segment; assembly happens after every worker has finished. rhs must cover
// the full column range or ErrDimensionMismatch is returned.
func (m *BlockMat[V, M]) ParMVP(rhs []V) ([]V, error) {
	nCols := m.NCols()
	if len(rhs) < nCols {
		return nil, opErrorf(opMVP, ErrDimensionMismatch)
	}
	parts := make([][]V, len(m.blocks))
	var g errgroup.Group
	for b := range m.blocks {
		g.Go(func() error {
			part, err := MVP[V](m.blocks[b], rhs)
			if err != nil {
				return err
			}
			parts[b] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make([]V, m.NRows())
	for b, part := range parts {
		copy(out[b*m.rowsPerBlock:], part)
	}
	return out, nil
}
