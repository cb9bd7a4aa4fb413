// SPDX-License-Identifier: MIT
// Package loop: functional configuration of a loop request.
//
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option / Options (functional options with unexported state),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions / finalizeOptions (internal resolution).
//
// Notes:
//   - The matching and absent-axis policies are chosen by the calling routine;
//     the resolver never guesses them from the data.
//   - WithResultKind wins over WithFloorKind and WithKindFlags.

package loop

import (
	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
)

// AbsentAxes selects how a request without an axis list is treated.
type AbsentAxes uint8

const (
	// WholeArray treats the reference as rank-1: one block sweeping every element.
	WholeArray AbsentAxes = iota
	// AllAxes behaves as if every axis of the reference had been listed.
	AllAxes
	// EachRow behaves as if axis 0 had been listed.
	EachRow
)

// ResultShape selects the shape of the target array.
type ResultShape uint8

const (
	// Compress removes the loop axes from the result.
	Compress ResultShape = iota
	// KeepDims keeps the loop axes with extent 1.
	KeepDims
	// SameDims gives the result the full reference shape.
	SameDims
	// NoResult creates no target.
	NoResult
)

// Match selects how non-reference sources must match the reference shape.
type Match uint8

const (
	// ExactMatch requires equal extents on every dimension, loop axes included.
	ExactMatch Match = iota
	// SingletonBroadcast additionally accepts extent 1, repeated with stride 0.
	SingletonBroadcast
)

// Defaults.
const (
	DefaultAbsentAxes  = WholeArray
	DefaultResultShape = Compress
	DefaultMatch       = ExactMatch
	DefaultBlock       = false
	DefaultUniqueAxes  = false
	DefaultOneAxis     = false
	DefaultReuse       = true
)

const (
	panicDisposableNegative = "loop: WithDisposable: source index must be >= 0"
	panicResultKindInvalid  = "loop: WithResultKind: kind must be valid"
	panicFloorKindInvalid   = "loop: WithFloorKind: kind must be numeric"
	panicProviderNil        = "loop: WithProvider: provider must not be nil"
)

// Option mutates request options.
type Option func(*Options)

// Options stores the effective request policy after applying Option setters.
type Options struct {
	absent  AbsentAxes
	shape   ResultShape
	match   Match
	block   bool
	unique  bool
	oneAxis bool

	negativeWhole bool // a negative axis means WholeArray

	resultKind kind.Kind // Invalid = derived from sources
	floorKind  kind.Kind // Invalid = no floor
	flags      kind.Flags

	provider   array.Provider
	disposable []int
	reuse      bool
}

// WithWholeArray treats an absent axis list as "rank-1, everything in one block".
func WithWholeArray() Option { return func(o *Options) { o.absent = WholeArray } }

// WithAllAxes treats an absent axis list as every axis of the reference.
func WithAllAxes() Option { return func(o *Options) { o.absent = AllAxes } }

// WithEachRow treats an absent axis list as axis 0.
func WithEachRow() Option { return func(o *Options) { o.absent = EachRow } }

// WithNegativeAxisWhole makes a negative axis select WholeArray instead of
// failing with ErrAxisOutOfRange.
func WithNegativeAxisWhole() Option { return func(o *Options) { o.negativeWhole = true } }

// WithBlock sweeps all listed axes as one combined innermost block.
// Without it every axis is its own pass, see Loop.NextPass.
func WithBlock() Option { return func(o *Options) { o.block = true } }

// WithUniqueAxes rejects repeated axes with ErrDuplicateAxis.
// Without it repeats are collapsed.
func WithUniqueAxes() Option { return func(o *Options) { o.unique = true } }

// WithOneAxis rejects axis lists longer than one with ErrTooManyAxes.
func WithOneAxis() Option { return func(o *Options) { o.oneAxis = true } }

// WithCompress removes loop axes from the result shape (default).
func WithCompress() Option { return func(o *Options) { o.shape = Compress } }

// WithKeepDims keeps loop axes in the result with extent 1.
func WithKeepDims() Option { return func(o *Options) { o.shape = KeepDims } }

// WithSameDims gives the result the reference shape.
func WithSameDims() Option { return func(o *Options) { o.shape = SameDims } }

// WithNoResult creates no target array.
func WithNoResult() Option { return func(o *Options) { o.shape = NoResult } }

// WithExactMatch requires every source to match the reference extents (default).
func WithExactMatch() Option { return func(o *Options) { o.match = ExactMatch } }

// WithSingletonBroadcast lets a source dimension of extent 1 repeat along the
// reference extent.
func WithSingletonBroadcast() Option { return func(o *Options) { o.match = SingletonBroadcast } }

// WithResultKind fixes the result kind, ignoring promotion.
func WithResultKind(k kind.Kind) Option {
	if !k.Valid() {
		panic(panicResultKindInvalid)
	}

	return func(o *Options) { o.resultKind = k }
}

// WithFloorKind raises the promoted result kind to at least k.
func WithFloorKind(k kind.Kind) Option {
	if !k.IsNumeric() {
		panic(panicFloorKindInvalid)
	}

	return func(o *Options) { o.floorKind = k }
}

// WithKindFlags applies promotion overrides (kind.FloorFloat, kind.ForceDouble).
func WithKindFlags(f kind.Flags) Option { return func(o *Options) { o.flags |= f } }

// WithProvider sets the storage provider used for the target.
func WithProvider(p array.Provider) Option {
	if p == nil {
		panic(panicProviderNil)
	}

	return func(o *Options) { o.provider = p }
}

// WithDisposable marks source i as a temporary whose storage may become the
// target. Indices beyond the source list are ignored.
func WithDisposable(i int) Option {
	if i < 0 {
		panic(panicDisposableNegative)
	}

	return func(o *Options) { o.disposable = append(o.disposable, i) }
}

// WithoutReuse disables storage reuse of disposable sources.
func WithoutReuse() Option { return func(o *Options) { o.reuse = false } }

// gatherOptions applies setters on top of the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		absent:  DefaultAbsentAxes,
		shape:   DefaultResultShape,
		match:   DefaultMatch,
		block:   DefaultBlock,
		unique:  DefaultUniqueAxes,
		oneAxis: DefaultOneAxis,
		reuse:   DefaultReuse,
	}
	for _, set := range user {
		set(&o)
	}
	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in one place.
func finalizeOptions(o *Options) {
	if o.provider == nil {
		o.provider = array.Heap{}
	}
	if o.shape == NoResult {
		o.disposable = nil
	}
}
