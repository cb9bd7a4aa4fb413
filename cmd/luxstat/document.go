// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// inputDoc is the YAML form of an input array. Values are kept as text and
// parsed according to Kind, so integers never pass through float64.
type inputDoc struct {
	Kind   string   `yaml:"kind"`
	Dims   []int    `yaml:"dims"`
	Values []string `yaml:"values"`
}

// outputDoc is the YAML form of a result array.
type outputDoc struct {
	Kind   string `yaml:"kind"`
	Dims   []int  `yaml:"dims,flow"`
	Values any    `yaml:"values,flow"`
}

func decodeDoc(r io.Reader) (inputDoc, error) {
	var doc inputDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return inputDoc{}, errors.Wrap(err, "decode input")
	}

	return doc, nil
}

// build converts doc into an owned array.
func (doc inputDoc) build() (*array.Array, error) {
	k, err := kind.Parse(doc.Kind)
	if err != nil {
		return nil, err
	}
	values := lo.Map(doc.Values, func(s string, _ int) string { return strings.TrimSpace(s) })
	dims := doc.Dims
	if len(dims) == 0 {
		dims = []int{len(values)}
	}
	a, err := array.New(k, dims...)
	if err != nil {
		return nil, err
	}
	if a.Len() != len(values) {
		return nil, errors.Wrapf(array.ErrBadShape, "%d values for dims %v", len(values), dims)
	}

	// Out-of-range values are rejected at the element width of k instead
	// of wrapping (integers) or overflowing to infinity (floats).
	bits := k.Size() * 8
	switch {
	case k == kind.String:
		copy(array.Strings(a), values)
	case k.IsInteger():
		write, _ := array.IntWriter(a)
		for i, s := range values {
			v, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return nil, errors.Wrapf(err, "value %d", i)
			}
			write(i, v)
		}
	case k.IsFloat():
		write, _ := array.RealWriter(a)
		for i, s := range values {
			v, err := strconv.ParseFloat(s, bits)
			if err != nil {
				return nil, errors.Wrapf(err, "value %d", i)
			}
			write(i, v)
		}
	default:
		write, _ := array.ComplexWriter(a)
		for i, s := range values {
			v, err := strconv.ParseComplex(s, bits)
			if err != nil {
				return nil, errors.Wrapf(err, "value %d", i)
			}
			write(i, v)
		}
	}

	return a, nil
}

// encodeArray writes a as an outputDoc.
func encodeArray(w io.Writer, a *array.Array) error {
	doc := outputDoc{Kind: a.Kind().String(), Dims: a.Dims()}
	if doc.Dims == nil {
		doc.Dims = []int{}
	}
	k := a.Kind()
	switch {
	case k == kind.String:
		doc.Values = array.Strings(a.Clone())
	case k.IsInteger():
		c := a.Clone()
		read, _ := array.IntReader(c)
		vals := make([]int64, c.Len())
		for i := range vals {
			vals[i] = read(i)
		}
		doc.Values = vals
	case k.IsFloat():
		vals, err := a.Float64s()
		if err != nil {
			return err
		}
		doc.Values = vals
	default:
		vals, err := a.Complex128s()
		if err != nil {
			return err
		}
		doc.Values = lo.Map(vals, func(v complex128, _ int) string { return strconv.FormatComplex(v, 'g', -1, 128) })
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode result")
	}

	return enc.Close()
}
