// SPDX-License-Identifier: MIT

package loop

import (
	"iter"

	"github.com/katalvlaran/lux/array"
)

// Step is one level of a loop-axis block: the axis extent and the element
// stride of one array along that axis.
type Step struct {
	Extent int
	Stride int
}

// Block is the ordered list of steps swept by the innermost loop, fastest first.
// The empty Block denotes a single element.
type Block []Step

// Len returns the number of elements in the block.
func (b Block) Len() int {
	n := 1
	for _, s := range b {
		n *= s.Extent
	}

	return n
}

// Flat collapses b into a single step when its levels are laid out
// back to back (stride[i+1] == stride[i]·extent[i]), which is the common
// case of a contiguous block. Levels of extent 1 are skipped.
func (b Block) Flat() (Step, bool) {
	flat := Step{Extent: 1}
	started := false
	for _, s := range b {
		if s.Extent == 1 {
			continue
		}
		if !started {
			flat = s
			started = true

			continue
		}
		if s.Stride != flat.Stride*flat.Extent {
			return Step{}, false
		}
		flat.Extent *= s.Extent
	}

	return flat, true
}

// Offsets yields the element offset of every block position relative to the
// start of the block, first level fastest.
func (b Block) Offsets() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := b.Len()
		if n == 0 {
			return
		}
		var pos [array.MaxDims]int
		off := 0
		for k := 0; k < n; k++ {
			if !yield(off) {
				return
			}
			for l := range b {
				pos[l]++
				off += b[l].Stride
				if pos[l] < b[l].Extent {
					break
				}
				off -= pos[l] * b[l].Stride
				pos[l] = 0
			}
		}
	}
}

// Snapshot is a saved result-dimension coordinate vector of one Iterator.
type Snapshot struct {
	coords [array.MaxDims]int
	n      int
}
