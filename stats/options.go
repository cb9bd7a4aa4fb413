// SPDX-License-Identifier: MIT
// Package stats: functional options shared by all routines.
//
// Options only select policy; the axis list is always an explicit argument.

package stats

import (
	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/katalvlaran/lux/loop"
)

// Defaults.
const (
	DefaultKeepDims     = false
	DefaultDouble       = false
	DefaultOmitNaN      = false
	DefaultPopulation   = false
	DefaultPartialWidth = true
	DefaultInPlace      = false
)

const panicProviderNil = "stats: WithProvider: provider must not be nil"

// Option mutates routine options.
type Option func(*Options)

// Options stores the effective routine policy.
type Options struct {
	keepDims   bool
	double     bool
	omitNaN    bool
	population bool
	partial    bool
	inPlace    bool
	provider   array.Provider
}

// WithKeepDims keeps reduced axes in the result with extent 1.
func WithKeepDims() Option { return func(o *Options) { o.keepDims = true } }

// WithDouble computes and stores the result in double precision.
func WithDouble() Option { return func(o *Options) { o.double = true } }

// WithOmitNaN skips NaN elements instead of propagating them.
func WithOmitNaN() Option { return func(o *Options) { o.omitNaN = true } }

// WithPopulation divides second moments by n instead of n-1.
func WithPopulation() Option { return func(o *Options) { o.population = true } }

// WithPartialWidth averages edge elements over the part of the window that
// lies inside the array (default).
func WithPartialWidth() Option { return func(o *Options) { o.partial = true } }

// WithFullWidth copies edge elements whose window does not fit unchanged.
func WithFullWidth() Option { return func(o *Options) { o.partial = false } }

// WithInPlace lets RunSum and Smooth reuse the input storage for the result
// when its kind has the result's element size. The input must not be used
// afterwards.
func WithInPlace() Option { return func(o *Options) { o.inPlace = true } }

// WithProvider sets the storage provider for results.
func WithProvider(p array.Provider) Option {
	if p == nil {
		panic(panicProviderNil)
	}

	return func(o *Options) { o.provider = p }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		keepDims:   DefaultKeepDims,
		double:     DefaultDouble,
		omitNaN:    DefaultOmitNaN,
		population: DefaultPopulation,
		partial:    DefaultPartialWidth,
		inPlace:    DefaultInPlace,
	}
	for _, set := range user {
		set(&o)
	}
	if o.provider == nil {
		o.provider = array.Heap{}
	}

	return o
}

// reduction returns the engine options of a block reduction.
func (o *Options) reduction(extra ...loop.Option) []loop.Option {
	out := []loop.Option{loop.WithBlock(), loop.WithProvider(o.provider)}
	if o.keepDims {
		out = append(out, loop.WithKeepDims())
	}
	if o.double {
		out = append(out, loop.WithKindFlags(kind.ForceDouble))
	}

	return append(out, extra...)
}

// elementwise returns the engine options of a same-shape routine along one axis.
func (o *Options) elementwise(extra ...loop.Option) []loop.Option {
	out := []loop.Option{loop.WithBlock(), loop.WithOneAxis(), loop.WithSameDims(), loop.WithProvider(o.provider)}
	if o.double {
		out = append(out, loop.WithKindFlags(kind.ForceDouble))
	}
	if o.inPlace {
		out = append(out, loop.WithDisposable(0))
	}

	return append(out, extra...)
}

// resultKind applies the precision flag to k.
func (o *Options) resultKind(k kind.Kind) kind.Kind {
	if o.double {
		return kind.PromoteFlags(k, kind.ForceDouble)
	}

	return k
}
