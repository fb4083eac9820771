// SPDX-License-Identifier: MIT
package vec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat"
	"github.com/katalvlaran/sparsemat/vec"
)

func TestDense_GrowthOnWrite(t *testing.T) {
	d := vec.New[float64](2)
	require.Zero(t, d.Dim())

	// Writing past the end zero-fills the gap.
	d.Set(3, 2.5)
	require.Equal(t, 4, d.Dim())
	require.Zero(t, d.Get(0))
	require.Zero(t, d.Get(2))
	require.InDelta(t, 2.5, d.Get(3), 1e-12)

	d.AddTo(3, 0.5)
	require.InDelta(t, 3.0, d.Get(3), 1e-12)

	// Reads never grow.
	require.Panics(t, func() { d.Get(4) })
}

func TestDense_FromSliceAndValues(t *testing.T) {
	backing := []float64{1, 2, 3}
	d := vec.FromSlice(backing)
	require.Equal(t, 3, d.Dim())

	// No copy: the container owns the slice.
	*d.GetMut(0) = 9
	require.InDelta(t, 9.0, backing[0], 1e-12)
	require.Equal(t, backing, d.Values())
}

func TestDense_AddSubScale(t *testing.T) {
	d := vec.FromSlice([]float64{1, 2, 3})
	rhs := vec.FromSlice([]float64{0.5, -1, 2})

	require.NoError(t, d.Add(rhs))
	require.Equal(t, []float64{1.5, 1, 5}, d.Values())

	require.NoError(t, d.Sub(rhs))
	require.Equal(t, []float64{1, 2, 3}, d.Values())

	d.Scale(2)
	require.Equal(t, []float64{2, 4, 6}, d.Values())
}

func TestDense_AddDimensionMismatch(t *testing.T) {
	short := vec.FromSlice([]float64{1})
	long := vec.FromSlice([]float64{1, 2})

	require.ErrorIs(t, short.Add(long), sparsemat.ErrDimensionMismatch)
	require.ErrorIs(t, short.Sub(long), sparsemat.ErrDimensionMismatch)
	// The longer receiver absorbs the shorter operand.
	require.NoError(t, long.Add(short))
	require.Equal(t, []float64{2, 2}, long.Values())
}

func TestDense_PlusMinusTimes(t *testing.T) {
	d := vec.FromSlice([]float64{1, 2})
	rhs := vec.FromSlice([]float64{10, 20})

	sum, err := d.Plus(rhs)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22}, sum.Values())

	diff, err := sum.Minus(rhs)
	require.NoError(t, err)
	require.Equal(t, d.Values(), diff.Values())

	scaled := d.Times(3)
	require.Equal(t, []float64{3, 6}, scaled.Values())
	// Operands untouched.
	require.Equal(t, []float64{1, 2}, d.Values())
}

func TestInnerProdAndNorms(t *testing.T) {
	a := vec.FromSlice([]float64{1, 2, 3})
	b := vec.FromSlice([]float64{4, 5, 6})

	require.InDelta(t, 32.0, vec.InnerProd[float64](a, b), 1e-12)
	require.InDelta(t, 14.0, vec.NormSquared[float64](a), 1e-12)
	require.InDelta(t, 5.0, vec.Norm[float64](vec.FromSlice([]float64{3, 4})), 1e-12)
	require.InDelta(t, 6.0, vec.Sum[float64](a), 1e-12)
}

func TestInnerProd_ShorterOperandBounds(t *testing.T) {
	a := vec.FromSlice([]float64{1, 2})
	b := vec.FromSlice([]float64{3, 4, 100})
	require.InDelta(t, 11.0, vec.InnerProd[float64](a, b), 1e-12)
}

func TestSparse_SetGetGrow(t *testing.T) {
	s := vec.NewSparse[float64, uint32](4)
	require.Zero(t, s.Dim())

	s.Set(5, 1.5)
	s.Set(1, 2.5)
	s.AddTo(5, 0.5)

	require.Equal(t, 6, s.Dim())
	require.Equal(t, 2, s.NNZ())
	require.InDelta(t, 2.0, s.Get(5), 1e-12)
	require.InDelta(t, 2.5, s.Get(1), 1e-12)
	// Absent positions read zero, no panic.
	require.Zero(t, s.Get(3))
	require.Zero(t, s.Get(100))
}

func TestSparse_IterDenseOrder(t *testing.T) {
	s := vec.NewSparse[float64, uint32](4)
	s.Set(3, 3.5)
	s.Set(0, 1.0)

	var got []float64
	for v := range s.Iter() {
		got = append(got, v)
	}
	// Dense rendition with implicit zeros, in index order.
	require.Equal(t, []float64{1.0, 0, 0, 3.5}, got)
}

func TestSparse_Sort(t *testing.T) {
	s := vec.NewSparse[float64, uint32](4)
	s.Set(2, 20)
	s.Set(0, 10)
	s.Set(1, 15)
	s.Sort()

	type pair struct {
		idx int
		val float64
	}
	var got []pair
	for i, v := range s.IterSparse() {
		got = append(got, pair{i, v})
	}
	require.Equal(t, []pair{{0, 10}, {1, 15}, {2, 20}}, got)
}

func TestSparse_AddSubAgainstDense(t *testing.T) {
	s := vec.NewSparse[float64, uint32](4)
	s.Set(0, 1)
	s.Set(2, 3)

	require.NoError(t, s.Add(vec.FromSlice([]float64{0.5, 0, 1})))
	require.InDelta(t, 1.5, s.Get(0), 1e-12)
	require.InDelta(t, 4.0, s.Get(2), 1e-12)
	// The zero at index 1 must not materialize an entry.
	require.Equal(t, 2, s.NNZ())

	require.NoError(t, s.Sub(vec.FromSlice([]float64{0.5, 0, 1})))
	require.InDelta(t, 1.0, s.Get(0), 1e-12)
	require.InDelta(t, 3.0, s.Get(2), 1e-12)
}

func TestSparse_Scale(t *testing.T) {
	s := vec.NewSparse[float64, uint32](2)
	s.Set(1, 4)
	s.Scale(0.25)
	require.InDelta(t, 1.0, s.Get(1), 1e-12)
}

func TestSparse_CloneIsIndependent(t *testing.T) {
	s := vec.NewSparse[float64, uint32](2)
	s.Set(0, 1)
	cp := s.Clone()
	cp.Set(0, 9)

	require.InDelta(t, 1.0, s.Get(0), 1e-12)
	require.InDelta(t, 9.0, cp.Get(0), 1e-12)
}

func TestVectorContract_FreeHelpers(t *testing.T) {
	// The free Set/AddTo work through the contract on both containers.
	for name, v := range map[string]vec.Vector[float64]{
		"dense":  vec.New[float64](4),
		"sparse": vec.NewSparse[float64, uint32](4),
	} {
		t.Run(name, func(t *testing.T) {
			vec.Set(v, 2, 5.0)
			vec.AddTo(v, 2, 1.0)
			require.Equal(t, 3, v.Dim())
			require.InDelta(t, 6.0, v.Get(2), 1e-12)
		})
	}
}
