// SPDX-License-Identifier: MIT

package array

import (
	"fmt"

	"github.com/katalvlaran/lux/kind"
)

// Heap allocates every request from the Go heap. It never fails on valid input.
type Heap struct{}

// Allocate implements Provider.
func (Heap) Allocate(dims []int, k kind.Kind) (*Array, error) {
	return New(k, dims...)
}

// Budget is a Provider with a fixed byte allowance. Requests that would exceed
// the remaining allowance fail with ErrAllocation and allocate nothing.
// Budget does not reclaim: the engine never frees arrays.
type Budget struct {
	Limit int // total bytes that may be handed out
	used  int
	count int
}

// NewBudget returns a Budget allowing limit bytes.
func NewBudget(limit int) *Budget { return &Budget{Limit: limit} }

// Allocate implements Provider.
func (b *Budget) Allocate(dims []int, k kind.Kind) (*Array, error) {
	if err := ValidateDims(dims); err != nil {
		return nil, err
	}
	need := Count(dims) * k.Size()
	if b.used+need > b.Limit {
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrAllocation, need, b.used, b.Limit)
	}
	a, err := New(k, dims...)
	if err != nil {
		return nil, err
	}
	b.used += need
	b.count++

	return a, nil
}

// Used returns the bytes handed out so far.
func (b *Budget) Used() int { return b.used }

// Allocations returns the number of successful requests.
func (b *Budget) Allocations() int { return b.count }
