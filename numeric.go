// SPDX-License-Identifier: MIT

// Package sparsemat: numeric capability sets.
//
// Purpose:
//   - Declare the static contracts an index type and a value type must
//     satisfy so storage engines and algorithms can be written once and
//     monomorphized per instantiation.
//   - Index types are fixed-width unsigned integers usable as array offsets,
//     with their maximum value reserved as the Unset sentinel ("no entry /
//     end of chain"). The sentinel is strictly greater than any legal offset;
//     capacity guards compare against it before an offset can collide.
//   - Value types form a ring: addition, subtraction, multiplication,
//     equality, additive zero V(0) and multiplicative one V(1).
//
// Complexity quicksheet:
//   - Unset: O(1), pure, side-effect free. Sum: O(n) over the sequence.

package sparsemat

import "iter"

// Index is the constraint for matrix offset types. Any fixed-width unsigned
// integer qualifies; smaller widths trade capacity for memory. The maximum
// value of the type is reserved as the Unset sentinel and is never a legal
// offset.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Value is the constraint for matrix and vector entry types: a ring-like
// numeric type with +, -, *, ==, zero V(0) and one V(1).
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the subset of Value accepted by iterative numerical methods,
// which additionally need division and a square root.
type Float interface {
	~float32 | ~float64
}

// Unset returns the sentinel value of an index type: its maximum.
// Deterministic and pure; zero() and one() of both capability sets are the
// plain conversions I(0), I(1), V(0), V(1).
func Unset[I Index]() I {
	return ^I(0)
}

// Sum folds a value sequence with +, starting from the additive zero.
func Sum[V Value](seq iter.Seq[V]) V {
	var total V
	for v := range seq {
		total += v
	}
	return total
}
