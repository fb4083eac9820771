// SPDX-License-Identifier: MIT
package sparsemat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat"
)

func TestMulSparse_KnownProduct(t *testing.T) {
	// a = |1 2|   b = |5 6|   a·b = |19 22|
	//     |3 4|       |7 8|         |43 50|
	a := sparsemat.NewListMat[float64, uint32](4)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 0, 3)
	a.Set(1, 1, 4)

	b := sparsemat.NewListMat[float64, uint32](4)
	b.Set(0, 0, 5)
	b.Set(0, 1, 6)
	b.Set(1, 0, 7)
	b.Set(1, 1, 8)
	b.AssembleColumnInfo()

	dst := sparsemat.NewListMat[float64, uint32](4)
	require.NoError(t, sparsemat.MulSparse[float64](a, b, dst))

	require.InDelta(t, 19, dst.Get(0, 0), 1e-12)
	require.InDelta(t, 22, dst.Get(0, 1), 1e-12)
	require.InDelta(t, 43, dst.Get(1, 0), 1e-12)
	require.InDelta(t, 50, dst.Get(1, 1), 1e-12)
}

func TestMulSparse_SparseOperandsSkipZeroCells(t *testing.T) {
	// Diagonal times diagonal stays diagonal; off-diagonal products are
	// never materialized.
	a := sparsemat.NewListMat[float64, uint32](4)
	a.Set(0, 0, 2)
	a.Set(1, 1, 3)
	a.Set(2, 2, 4)

	b := sparsemat.NewListMat[float64, uint32](4)
	b.Set(0, 0, 5)
	b.Set(1, 1, 6)
	b.Set(2, 2, 7)
	b.AssembleColumnInfo()

	dst := sparsemat.NewListMat[float64, uint32](8)
	require.NoError(t, sparsemat.MulSparse[float64](a, b, dst))

	require.Equal(t, 3, dst.NNZ())
	require.InDelta(t, 10, dst.Get(0, 0), 1e-12)
	require.InDelta(t, 18, dst.Get(1, 1), 1e-12)
	require.InDelta(t, 28, dst.Get(2, 2), 1e-12)
}

func TestMulSparse_IdentityIsNeutral(t *testing.T) {
	m := buildListFixture()
	eye := sparsemat.EyeList[float64, uint32](3)
	eye.AssembleColumnInfo()

	dst := sparsemat.NewListMat[float64, uint32](8)
	require.NoError(t, sparsemat.MulSparse[float64](m, eye, dst))

	require.Equal(t, m.NNZ(), dst.NNZ())
	for e := range m.Iter() {
		require.InDelta(t, e.Val, dst.Get(e.Row, e.Col), 1e-12)
	}
}

func TestMulSparse_DimensionMismatch(t *testing.T) {
	a := sparsemat.NewListMat[float64, uint32](2)
	a.Set(0, 4, 1.0) // 1×5

	b := sparsemat.NewListMat[float64, uint32](2)
	b.Set(2, 0, 1.0) // 3×1
	b.AssembleColumnInfo()

	dst := sparsemat.NewListMat[float64, uint32](2)
	err := sparsemat.MulSparse[float64](a, b, dst)
	require.ErrorIs(t, err, sparsemat.ErrDimensionMismatch)
}

func TestMulSparse_RequiresAssembledColumns(t *testing.T) {
	a := sparsemat.EyeList[float64, uint32](2)
	b := sparsemat.EyeList[float64, uint32](2) // column info never assembled

	dst := sparsemat.NewListMat[float64, uint32](2)
	err := sparsemat.MulSparse[float64](a, b, dst)
	require.ErrorIs(t, err, sparsemat.ErrColumnInfoNotAssembled)
}

func TestMulSparse_CRSOperand(t *testing.T) {
	// Mixed engines: incremental lhs, compressed rhs.
	a := sparsemat.NewListMat[float64, uint32](4)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 1, 3)

	src := sparsemat.NewListMat[float64, uint32](4)
	src.Set(0, 1, 4)
	src.Set(1, 0, 5)
	b := sparsemat.NewCRSFromList(src)
	b.AssembleColumnInfo()

	dst := sparsemat.NewListMat[float64, uint32](4)
	require.NoError(t, sparsemat.MulSparse[float64](a, b, dst))

	require.InDelta(t, 10, dst.Get(0, 0), 1e-12) // 2·5
	require.InDelta(t, 4, dst.Get(0, 1), 1e-12)  // 1·4
	require.InDelta(t, 15, dst.Get(1, 0), 1e-12) // 3·5
	require.Zero(t, dst.Get(1, 1))
}
