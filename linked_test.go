// SPDX-License-Identifier: MIT
package sparsemat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat"
)

// buildListFixture assembles the 3×3 working example shared across the
// engine tests:
//
//	7.12  4.2   0.12
//	0     2.24  4.12
//	0     0     2.12
func buildListFixture() *sparsemat.ListMat[float64, uint32] {
	m := sparsemat.NewListMat[float64, uint32](8)
	m.AddTo(0, 1, 4.2)
	m.AddTo(1, 2, 4.12)
	m.AddTo(2, 2, 2.12)
	m.AddTo(1, 1, 1.12)
	*m.GetMut(1, 1) += 1.12
	*m.GetMut(0, 2) += 0.12
	*m.GetMut(0, 0) = 8.12
	m.Set(0, 0, 7.12)
	return m
}

func TestListMat_GetAndDims(t *testing.T) {
	m := buildListFixture()

	require.Equal(t, 3, m.NRows())
	require.Equal(t, 3, m.NCols())
	require.Equal(t, 6, m.NNZ())
	require.InDelta(t, 7.12, m.Get(0, 0), 1e-12)
	require.InDelta(t, 2.24, m.Get(1, 1), 1e-12)
	// Absent entries read as zero.
	require.Zero(t, m.Get(2, 0))
	require.Zero(t, m.Get(9, 9))
}

func TestListMat_IterInsertionOrder(t *testing.T) {
	m := buildListFixture()

	var got []sparsemat.Entry[float64]
	for e := range m.Iter() {
		got = append(got, e)
	}
	// Rows ascending; within a row, insertion order.
	want := []sparsemat.Entry[float64]{
		{Row: 0, Col: 1, Val: 4.2},
		{Row: 0, Col: 2, Val: 0.12},
		{Row: 0, Col: 0, Val: 7.12},
		{Row: 1, Col: 2, Val: 4.12},
		{Row: 1, Col: 1, Val: 2.24},
		{Row: 2, Col: 2, Val: 2.12},
	}
	require.Equal(t, len(want), len(got))
	for k := range want {
		require.Equal(t, want[k].Row, got[k].Row, "entry %d", k)
		require.Equal(t, want[k].Col, got[k].Col, "entry %d", k)
		require.InDelta(t, want[k].Val, got[k].Val, 1e-12, "entry %d", k)
	}
}

func TestListMat_IterRowOutOfRangeIsEmpty(t *testing.T) {
	m := buildListFixture()
	for range m.IterRow(42) {
		t.Fatal("expected no entries")
	}
	for range m.IterRow(-1) {
		t.Fatal("expected no entries")
	}
}

func TestListMat_Arithmetic(t *testing.T) {
	m := buildListFixture()

	sum := m.Clone().Plus(m)
	require.InDelta(t, 14.24, sum.Get(0, 0), 1e-12)

	sub := sum.Minus(m)
	require.InDelta(t, m.Get(0, 0), sub.Get(0, 0), 1e-12)

	mul := m.Times(2.0)
	require.InDelta(t, sum.Get(0, 0), mul.Get(0, 0), 1e-12)
}

func TestListMat_MVPAndDensity(t *testing.T) {
	m := buildListFixture()

	mvp, err := m.MVP([]float64{2.0, 4.8, 1.2})
	require.NoError(t, err)
	require.Len(t, mvp, 3)
	require.InDelta(t, 34.544, mvp[0], 1e-9)
	require.InDelta(t, 2.24*4.8+4.12*1.2, mvp[1], 1e-9)
	require.InDelta(t, 2.12*1.2, mvp[2], 1e-9)

	require.InDelta(t, 6.0/9.0, m.Density(), 1e-12)
	require.InDelta(t, 1.0, m.Density()+m.Sparsity(), 1e-12)
}

func TestListMat_MVPShortVector(t *testing.T) {
	m := buildListFixture()
	_, err := m.MVP([]float64{1.0})
	require.ErrorIs(t, err, sparsemat.ErrDimensionMismatch)
}

func TestListMat_ColumnIteration(t *testing.T) {
	m := buildListFixture()

	// Before assembly the column view is refused.
	_, err := m.IterCol(2)
	require.ErrorIs(t, err, sparsemat.ErrColumnInfoNotAssembled)

	m.AssembleColumnInfo()
	seq, err := m.IterCol(2)
	require.NoError(t, err)

	type pair struct {
		row int
		val float64
	}
	var got []pair
	for row, val := range seq {
		got = append(got, pair{row, val})
	}
	// Insertion order across the column: (1,2) then (2,2) then (0,2).
	require.Equal(t, []pair{{1, 4.12}, {2, 2.12}, {0, 0.12}}, got)
}

func TestListMat_ColumnInfoReassembles(t *testing.T) {
	m := buildListFixture()
	m.AssembleColumnInfo()

	// A write after assembly invalidates the view; reassembly restores it.
	m.Set(2, 0, 9.5)
	_, err := m.IterCol(0)
	require.ErrorIs(t, err, sparsemat.ErrColumnInfoNotAssembled)

	m.AssembleColumnInfo()
	seq, err := m.IterCol(0)
	require.NoError(t, err)
	rows := []int{}
	for row := range seq {
		rows = append(rows, row)
	}
	require.Equal(t, []int{0, 2}, rows)
}

func TestListMat_SortRow(t *testing.T) {
	m := buildListFixture()
	m.Sort()

	var cols []int
	for j := range m.IterRow(0) {
		cols = append(cols, j)
	}
	require.Equal(t, []int{0, 1, 2}, cols)

	// Values stay attached to their columns.
	require.InDelta(t, 7.12, m.Get(0, 0), 1e-12)
	require.InDelta(t, 4.2, m.Get(0, 1), 1e-12)
	require.InDelta(t, 0.12, m.Get(0, 2), 1e-12)
}

func TestListMat_ScaleAndTranspose(t *testing.T) {
	m := buildListFixture()

	tr := m.Transpose()
	require.Equal(t, m.NRows(), tr.NCols())
	require.Equal(t, m.NCols(), tr.NRows())
	for e := range m.Iter() {
		require.InDelta(t, e.Val, tr.Get(e.Col, e.Row), 1e-12)
	}

	// Transposing twice restores every entry.
	back := tr.Transpose()
	for e := range m.Iter() {
		require.InDelta(t, e.Val, back.Get(e.Row, e.Col), 1e-12)
	}

	m.Scale(0.5)
	require.InDelta(t, 3.56, m.Get(0, 0), 1e-12)
}

func TestListMat_IsSymmetric(t *testing.T) {
	require.False(t, buildListFixture().IsSymmetric())

	s := sparsemat.NewListMat[float64, uint32](4)
	s.Set(0, 0, 1.0)
	s.Set(0, 1, 2.5)
	s.Set(1, 0, 2.5)
	s.Set(1, 1, 3.0)
	require.True(t, s.IsSymmetric())

	require.True(t, sparsemat.EyeList[float64, uint32](5).IsSymmetric())
}

func TestEyeList(t *testing.T) {
	eye := sparsemat.EyeList[float64, uint32](4)
	require.Equal(t, 4, eye.NRows())
	require.Equal(t, 4, eye.NCols())
	require.Equal(t, 4, eye.NNZ())
	for i := 0; i < 4; i++ {
		require.InDelta(t, 1.0, eye.Get(i, i), 1e-12)
	}
	// Identity maps any vector to itself.
	v := []float64{3, -1, 0.5, 2}
	mvp, err := eye.MVP(v)
	require.NoError(t, err)
	require.Equal(t, v, mvp)
}

func TestListMat_CloneIsIndependent(t *testing.T) {
	m := buildListFixture()
	cp := m.Clone()
	cp.Set(0, 0, -1.0)

	require.InDelta(t, 7.12, m.Get(0, 0), 1e-12)
	require.InDelta(t, -1.0, cp.Get(0, 0), 1e-12)
}

func TestListMat_IntegerValues(t *testing.T) {
	m := sparsemat.NewListMat[int64, uint16](4)
	m.AddTo(0, 0, 3)
	m.AddTo(0, 0, 4)
	m.Set(1, 1, -2)

	require.Equal(t, int64(7), m.Get(0, 0))
	mvp, err := m.MVP([]int64{2, 10})
	require.NoError(t, err)
	require.Equal(t, []int64{14, -20}, mvp)
}
