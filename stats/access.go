// SPDX-License-Identifier: MIT
// Package stats: typed accessors and the per-kind dispatch.
//
// Routines are written once as generic kernels over number and instantiated
// for the accumulator that fits the result kind: int64 for integers, float64
// for reals, complex128 for complex kinds.

package stats

import (
	"math"

	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/katalvlaran/lux/loop"
	"github.com/pkg/errors"
)

// number is the set of accumulator types.
type number interface {
	int64 | float64 | complex128
}

// readerOf returns an accessor reading a as T.
func readerOf[T number](a *array.Array) (func(int) T, error) {
	var (
		r   any
		err error
	)
	switch any(*new(T)).(type) {
	case int64:
		r, err = array.IntReader(a)
	case float64:
		r, err = array.RealReader(a)
	default:
		r, err = array.ComplexReader(a)
	}
	if err != nil {
		return nil, err
	}

	return r.(func(int) T), nil
}

// writerOf returns an accessor storing T into a.
func writerOf[T number](a *array.Array) (func(int, T), error) {
	var (
		w   any
		err error
	)
	switch any(*new(T)).(type) {
	case int64:
		w, err = array.IntWriter(a)
	case float64:
		w, err = array.RealWriter(a)
	default:
		w, err = array.ComplexWriter(a)
	}
	if err != nil {
		return nil, err
	}

	return w.(func(int, T)), nil
}

// isNaN reports whether v is (or has a part that is) NaN. Integers never are.
func isNaN[T number](v T) bool { return v != v }

// nan returns NaN as T (zero for integers).
func nan[T number]() T {
	var out T
	switch p := any(&out).(type) {
	case *float64:
		*p = math.NaN()
	case *complex128:
		*p = complex(math.NaN(), math.NaN())
	}

	return out
}

// div returns s/n.
func div[T number](s T, n float64) T {
	switch v := any(s).(type) {
	case int64:
		return any(v / int64(n)).(T)
	case float64:
		return any(v / n).(T)
	case complex128:
		return any(v / complex(n, 0)).(T)
	}

	return s
}

// abs2 returns |v|².
func abs2[T number](v T) float64 {
	switch x := any(v).(type) {
	case int64:
		return float64(x) * float64(x)
	case float64:
		return x * x
	case complex128:
		return real(x)*real(x) + imag(x)*imag(x)
	}

	return 0
}

// dispatch runs the kernel instance matching the class of k.
func dispatch(k kind.Kind, asInt, asReal, asComplex func() error) error {
	switch {
	case k.IsInteger():
		return asInt()
	case k.IsFloat():
		return asReal()
	case k.IsComplex():
		return asComplex()
	}

	return ErrNotNumeric
}

// pair holds the source reader and target writer of a single-source routine.
type pair[T number] struct {
	read  func(int) T
	write func(int, T)
}

func newPair[T number](l *loop.Loop) (pair[T], error) {
	read, err := readerOf[T](l.Sources()[0])
	if err != nil {
		return pair[T]{}, err
	}
	write, err := writerOf[T](l.Target())
	if err != nil {
		return pair[T]{}, err
	}

	return pair[T]{read: read, write: write}, nil
}

// statsErrorf prefixes err with the operation name.
func statsErrorf(op string, err error) error {
	if err == nil {
		return nil
	}

	return errors.WithMessage(err, op)
}

// requireNumeric rejects string input.
func requireNumeric(xs ...*array.Array) error {
	for i, x := range xs {
		if x == nil {
			return errors.Wrapf(array.ErrNilArray, "argument %d", i)
		}
		if !x.Kind().IsNumeric() {
			return errors.Wrapf(ErrNotNumeric, "argument %d is %s", i, x.Kind())
		}
	}

	return nil
}

// requireReal rejects complex and string input.
func requireReal(xs ...*array.Array) error {
	for i, x := range xs {
		if x == nil {
			return errors.Wrapf(array.ErrNilArray, "argument %d", i)
		}
		if !x.Kind().IsReal() {
			return errors.Wrapf(ErrNotReal, "argument %d is %s", i, x.Kind())
		}
	}

	return nil
}

// requireBlock rejects zero-length blocks for routines without an empty value.
func requireBlock(l *loop.Loop) error {
	if l.Count() > 0 && l.BlockLen() == 0 {
		return ErrEmptyReduction
	}

	return nil
}
