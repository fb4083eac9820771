// SPDX-License-Identifier: MIT

// Package vec: sparse vector container (index/value pairs).
//
// Looking up values is a linear scan and may be very inefficient; the point
// of this container is the trivial layout, not speed. Use Dense for hot
// loops.

package vec

import (
	"cmp"
	"iter"
	"slices"

	"github.com/katalvlaran/sparsemat"
)

// Sparse stores only written positions as parallel index/value slices, in
// insertion order until Sort is called.
type Sparse[V sparsemat.Value, I sparsemat.Index] struct {
	indices []I
	values  []V
	dim     int
}

// NewSparse returns an empty sparse vector with space reserved for cap
// entries.
func NewSparse[V sparsemat.Value, I sparsemat.Index](cap int) *Sparse[V, I] {
	return &Sparse[V, I]{
		indices: make([]I, 0, cap),
		values:  make([]V, 0, cap),
	}
}

// Clone returns an independent deep copy.
func (s *Sparse[V, I]) Clone() *Sparse[V, I] {
	return &Sparse[V, I]{
		indices: slices.Clone(s.indices),
		values:  slices.Clone(s.values),
		dim:     s.dim,
	}
}

// Dim returns one plus the highest index ever written.
func (s *Sparse[V, I]) Dim() int { return s.dim }

// NNZ returns the number of stored entries.
func (s *Sparse[V, I]) NNZ() int { return len(s.values) }

// IterSparse yields only the stored (index, value) pairs, in storage order.
func (s *Sparse[V, I]) IterSparse() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for k, ind := range s.indices {
			if !yield(int(ind), s.values[k]) {
				return
			}
		}
	}
}

// Sort reorders the stored entries by ascending index.
func (s *Sparse[V, I]) Sort() {
	type pair struct {
		ind I
		val V
	}
	pairs := make([]pair, len(s.indices))
	for k := range s.indices {
		pairs[k] = pair{ind: s.indices[k], val: s.values[k]}
	}
	slices.SortFunc(pairs, func(a, b pair) int { return cmp.Compare(a.ind, b.ind) })
	for k, p := range pairs {
		s.indices[k] = p.ind
		s.values[k] = p.val
	}
}

// find returns the storage position of index i. Reports false when absent.
func (s *Sparse[V, I]) find(i int) (int, bool) {
	ind := I(i)
	for k, x := range s.indices {
		if x == ind {
			return k, true
		}
	}
	return 0, false
}

// Get returns the value at position i, or zero when no entry exists.
func (s *Sparse[V, I]) Get(i int) V {
	if k, ok := s.find(i); ok {
		return s.values[k]
	}
	var zero V
	return zero
}

// GetMut returns a mutable handle to position i, appending a zero entry
// when absent and extending the dimension when i is beyond it.
func (s *Sparse[V, I]) GetMut(i int) *V {
	if i >= s.dim {
		s.dim = i + 1
	}
	if k, ok := s.find(i); ok {
		return &s.values[k]
	}
	var zero V
	s.indices = append(s.indices, I(i))
	s.values = append(s.values, zero)
	return &s.values[len(s.values)-1]
}

// Set writes v at position i.
func (s *Sparse[V, I]) Set(i int, v V) { *s.GetMut(i) = v }

// AddTo accumulates v into position i.
func (s *Sparse[V, I]) AddTo(i int, v V) { *s.GetMut(i) += v }

// Iter yields all Dim() values in index order, zeros included for absent
// positions.
func (s *Sparse[V, I]) Iter() iter.Seq[V] {
	return func(yield func(V) bool) {
		sorted := s.Clone()
		sorted.Sort()
		pos := 0
		for i := 0; i < s.dim; i++ {
			var v V
			if pos < len(sorted.indices) && int(sorted.indices[pos]) == i {
				v = sorted.values[pos]
				pos++
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Add accumulates rhs element-wise: s += rhs.
// ErrDimensionMismatch when s is shorter than rhs.
func (s *Sparse[V, I]) Add(rhs Vector[V]) error {
	if s.Dim() < rhs.Dim() {
		return sparsemat.ErrDimensionMismatch
	}
	i := 0
	for v := range rhs.Iter() {
		if v != 0 {
			s.AddTo(i, v)
		}
		i++
	}
	return nil
}

// Sub subtracts rhs element-wise: s -= rhs.
func (s *Sparse[V, I]) Sub(rhs Vector[V]) error {
	if s.Dim() < rhs.Dim() {
		return sparsemat.ErrDimensionMismatch
	}
	i := 0
	for v := range rhs.Iter() {
		if v != 0 {
			s.AddTo(i, -v)
		}
		i++
	}
	return nil
}

// Scale multiplies every stored value in place.
func (s *Sparse[V, I]) Scale(factor V) {
	for k := range s.values {
		s.values[k] *= factor
	}
}
