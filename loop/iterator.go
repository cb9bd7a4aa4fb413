// SPDX-License-Identifier: MIT
// Package loop: strided iterator.
//
// Purpose:
//   - Walk one array in lockstep with the other arrays of a Loop.
//   - Keep the result-dimension coordinates separate from the loop-axis block
//     counter, so callers can either sweep the block themselves (Block, Offset,
//     Advance) or let the iterator do it (Next).
//
// Invariant:
//   - Offset() = base + Σ coords[i]·strides[i] + inner offset, where the inner
//     offset is 0 whenever the block counter is at its start.
//
// Determinism:
//   - Result tuples are visited first-dimension-fastest, each exactly once per
//     scan; an exhausted iterator is back at its start, so scans restart.

package loop

import "github.com/katalvlaran/lux/array"

// Iterator walks one array of a resolved Loop.
type Iterator struct {
	arr  *array.Array
	base int

	dims    []int // result-dimension extents (loop axes excluded)
	strides []int // element strides along dims
	coords  []int
	outer   int // offset of the current result tuple

	block    Block
	inner    [array.MaxDims]int
	innerOff int
}

func newIterator(a *array.Array, dims, strides []int, block Block) *Iterator {
	return &Iterator{
		arr:     a,
		base:    a.Offset(),
		dims:    dims,
		strides: strides,
		coords:  make([]int, len(dims)),
		outer:   a.Offset(),
		block:   block,
	}
}

// Array returns the array being walked.
func (it *Iterator) Array() *array.Array { return it.arr }

// Offset returns the current element offset into the array storage.
func (it *Iterator) Offset() int { return it.outer + it.innerOff }

// ByteOffset returns Offset scaled by the element size.
func (it *Iterator) ByteOffset() int { return it.Offset() * it.arr.Kind().Size() }

// Coords returns a copy of the result-dimension coordinates.
func (it *Iterator) Coords() []int { return append([]int(nil), it.coords...) }

// Block returns the loop-axis steps of this array.
func (it *Iterator) Block() Block { return it.block }

// Rank returns the number of result dimensions walked by Advance.
func (it *Iterator) Rank() int { return len(it.dims) }

// Advance moves to the next result tuple and rewinds the block counter.
// It returns how many result dimensions rolled over: 0 when the fastest
// dimension simply stepped, Rank() when the scan is exhausted (the iterator
// is then back at its first tuple).
func (it *Iterator) Advance() int {
	it.rewindBlock()
	for d := range it.dims {
		it.coords[d]++
		it.outer += it.strides[d]
		if it.coords[d] < it.dims[d] {
			return d
		}
		it.outer -= it.coords[d] * it.strides[d]
		it.coords[d] = 0
	}

	return len(it.dims)
}

// Next steps one element in full nested order: through the block first, then
// to the next result tuple. The return value counts the levels that rolled
// over; a value ≥ len(Block()) marks the end of a block (a reduction
// boundary) and len(Block())+Rank() marks exhaustion.
func (it *Iterator) Next() int {
	for l := range it.block {
		it.inner[l]++
		it.innerOff += it.block[l].Stride
		if it.inner[l] < it.block[l].Extent {
			return l
		}
		it.innerOff -= it.inner[l] * it.block[l].Stride
		it.inner[l] = 0
	}

	return len(it.block) + it.Advance()
}

// Save snapshots the result-dimension coordinates.
func (it *Iterator) Save() Snapshot {
	var s Snapshot
	s.n = copy(s.coords[:], it.coords)

	return s
}

// Restore rewinds to a snapshot taken by Save on an iterator of the same
// Loop pass: coordinates are copied back, the offset is recomputed from them
// and the block counter is rewound.
func (it *Iterator) Restore(s Snapshot) {
	copy(it.coords, s.coords[:s.n])
	it.outer = it.base
	for d, c := range it.coords {
		it.outer += c * it.strides[d]
	}
	it.rewindBlock()
}

// Reset rewinds to the first tuple.
func (it *Iterator) Reset() { it.Restore(Snapshot{n: len(it.coords)}) }

func (it *Iterator) rewindBlock() {
	for l := range it.block {
		it.inner[l] = 0
	}
	it.innerOff = 0
}

// Group advances several iterators in lockstep. All members come from the
// same Loop, so they share result dims and block extents and report equal
// carry depths.
type Group []*Iterator

// Advance advances every member and returns the common carry depth.
func (g Group) Advance() int {
	depth := 0
	for _, it := range g {
		depth = it.Advance()
	}

	return depth
}

// Next steps every member and returns the common rolled-level count.
func (g Group) Next() int {
	depth := 0
	for _, it := range g {
		depth = it.Next()
	}

	return depth
}

// Save snapshots every member.
func (g Group) Save() []Snapshot {
	out := make([]Snapshot, len(g))
	for i, it := range g {
		out[i] = it.Save()
	}

	return out
}

// Restore rewinds every member to its snapshot.
func (g Group) Restore(s []Snapshot) {
	for i, it := range g {
		it.Restore(s[i])
	}
}

// Reset rewinds every member.
func (g Group) Reset() {
	for _, it := range g {
		it.Reset()
	}
}
