// SPDX-License-Identifier: MIT
package sparsemat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// White-box coverage for the shared row-index arena; the engines built on
// top only exercise it indirectly.

func collectSeq(seq func(yield func(int) bool)) []int {
	var out []int
	seq(func(slot int) bool {
		out = append(out, slot)
		return true
	})
	return out
}

func TestRowIndexList_PushAndIterRow(t *testing.T) {
	list := newRowIndexList[uint16](0)
	// Slots 0..4 land in rows 1,1,2,4,1.
	for _, row := range []int{1, 1, 2, 4, 1} {
		list.push(row)
	}

	require.Equal(t, 5, list.nEntries())
	require.Equal(t, 5, list.nRows())

	// Row 0 was never touched.
	require.Empty(t, collectSeq(list.iterRow(0)))

	// Row 1 holds slots 0, 1 and 4 in insertion order.
	require.Equal(t, []int{0, 1, 4}, collectSeq(list.iterRow(1)))
	require.Equal(t, []int{2}, collectSeq(list.iterRow(2)))
	require.Equal(t, []int{3}, collectSeq(list.iterRow(4)))
}

func TestRowIndexList_OutOfRangeRowsAreEmpty(t *testing.T) {
	list := newRowIndexList[uint32](4)
	list.push(0)

	require.Empty(t, collectSeq(list.iterRow(-1)))
	require.Empty(t, collectSeq(list.iterRow(7)))
}

func TestRowIndexList_All(t *testing.T) {
	list := newRowIndexList[uint32](4)
	list.push(2)
	list.push(0)
	list.push(2)

	type pair struct{ row, slot int }
	var got []pair
	for row, slot := range list.all() {
		got = append(got, pair{row, slot})
	}
	// Rows ascending, slots within a row in insertion order.
	require.Equal(t, []pair{{0, 1}, {2, 0}, {2, 2}}, got)
}

func TestRowIndexList_CloneIsIndependent(t *testing.T) {
	list := newRowIndexList[uint32](2)
	list.push(0)
	list.push(0)

	cp := list.clone()
	cp.push(0)

	require.Equal(t, 2, list.nEntries())
	require.Equal(t, 3, cp.nEntries())
	require.Equal(t, []int{0, 1}, collectSeq(list.iterRow(0)))
	require.Equal(t, []int{0, 1, 2}, collectSeq(cp.iterRow(0)))
}

func TestRowIndexList_CapacityExhaustionPanics(t *testing.T) {
	// uint8 reserves 255 as the chain terminator, so 255 pushes fit and the
	// 256th must refuse.
	list := newRowIndexList[uint8](0)
	for k := 0; k < 255; k++ {
		list.push(0)
	}
	require.Panics(t, func() { list.push(0) })
}
