// SPDX-License-Identifier: MIT

// Package vec: dense vector container (contiguous array, growth-on-write).

package vec

import (
	"iter"
	"slices"

	"github.com/katalvlaran/sparsemat"
)

// Dense is a contiguous vector of values. The zero value is an empty,
// usable vector.
type Dense[V sparsemat.Value] struct {
	values []V
}

// New returns an empty dense vector with space reserved for cap values.
func New[V sparsemat.Value](cap int) *Dense[V] {
	return &Dense[V]{values: make([]V, 0, cap)}
}

// FromSlice wraps vals as a dense vector. Ownership transfers; the caller
// must not keep mutating the slice.
func FromSlice[V sparsemat.Value](vals []V) *Dense[V] {
	return &Dense[V]{values: vals}
}

// Clone returns an independent deep copy.
func (d *Dense[V]) Clone() *Dense[V] {
	return &Dense[V]{values: slices.Clone(d.values)}
}

// Values exposes the backing slice (no copy), handy for matrix-vector
// product calls that take plain slices.
func (d *Dense[V]) Values() []V { return d.values }

// Dim returns the current length.
func (d *Dense[V]) Dim() int { return len(d.values) }

// Get returns the value at position i. Reads beyond Dim panic; only writes
// grow the container.
func (d *Dense[V]) Get(i int) V { return d.values[i] }

// GetMut returns a mutable handle to position i, extending the vector
// zero-filled when i is beyond the current length.
func (d *Dense[V]) GetMut(i int) *V {
	for i >= len(d.values) {
		var zero V
		d.values = append(d.values, zero)
	}
	return &d.values[i]
}

// Set writes v at position i, growing if needed.
func (d *Dense[V]) Set(i int, v V) { *d.GetMut(i) = v }

// AddTo accumulates v into position i, growing if needed.
func (d *Dense[V]) AddTo(i int, v V) { *d.GetMut(i) += v }

// Iter yields all values in index order.
func (d *Dense[V]) Iter() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Add accumulates rhs element-wise: d += rhs.
// ErrDimensionMismatch when d is shorter than rhs.
func (d *Dense[V]) Add(rhs Vector[V]) error {
	if d.Dim() < rhs.Dim() {
		return sparsemat.ErrDimensionMismatch
	}
	i := 0
	for v := range rhs.Iter() {
		d.values[i] += v
		i++
	}
	return nil
}

// Sub subtracts rhs element-wise: d -= rhs.
func (d *Dense[V]) Sub(rhs Vector[V]) error {
	if d.Dim() < rhs.Dim() {
		return sparsemat.ErrDimensionMismatch
	}
	i := 0
	for v := range rhs.Iter() {
		d.values[i] -= v
		i++
	}
	return nil
}

// Scale multiplies every value in place.
func (d *Dense[V]) Scale(factor V) {
	for i := range d.values {
		d.values[i] *= factor
	}
}

// Plus returns a new vector d + rhs; neither operand is mutated.
func (d *Dense[V]) Plus(rhs Vector[V]) (*Dense[V], error) {
	out := d.Clone()
	if err := out.Add(rhs); err != nil {
		return nil, err
	}
	return out, nil
}

// Minus returns a new vector d - rhs; neither operand is mutated.
func (d *Dense[V]) Minus(rhs Vector[V]) (*Dense[V], error) {
	out := d.Clone()
	if err := out.Sub(rhs); err != nil {
		return nil, err
	}
	return out, nil
}

// Times returns a new vector scaled by factor; d is not mutated.
func (d *Dense[V]) Times(factor V) *Dense[V] {
	out := d.Clone()
	out.Scale(factor)
	return out
}
