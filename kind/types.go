// SPDX-License-Identifier: MIT

package kind

import (
	"fmt"
	"strings"
	"unsafe"
)

// Kind identifies the per-element representation of an array.
type Kind uint8

// Registered kinds. The numeric order of the real kinds matches their order
// in the promotion lattice.
const (
	Invalid Kind = iota // zero value; never attached to an array
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Complex64
	Complex128
	String

	numKinds
)

// Flags select promotion overrides applied on top of a lattice join.
type Flags uint8

const (
	// FloorFloat forces the result to at least Float32 (or Complex64).
	FloorFloat Flags = 1 << iota
	// ForceDouble forces the result to at least Float64 (or Complex128).
	ForceDouble
)

// entry is one row of the registry table.
type entry struct {
	name  string
	size  int
	align int
	class class
}

type class uint8

const (
	classNone class = iota
	classInteger
	classFloat
	classComplex
	classString
)

var stringHeader = int(unsafe.Sizeof(""))

// table is indexed by Kind.
var table = [numKinds]entry{
	Invalid:    {name: "invalid"},
	Int8:       {name: "int8", size: 1, align: 1, class: classInteger},
	Int16:      {name: "int16", size: 2, align: 2, class: classInteger},
	Int32:      {name: "int32", size: 4, align: 4, class: classInteger},
	Int64:      {name: "int64", size: 8, align: 8, class: classInteger},
	Float32:    {name: "float32", size: 4, align: 4, class: classFloat},
	Float64:    {name: "float64", size: 8, align: 8, class: classFloat},
	Complex64:  {name: "complex64", size: 8, align: 4, class: classComplex},
	Complex128: {name: "complex128", size: 16, align: 8, class: classComplex},
	String:     {name: "string", size: stringHeader, align: stringHeader / 2, class: classString},
}

// aliases maps the interpreter-family spellings onto registry kinds.
var aliases = map[string]Kind{
	"byte":    Int8,
	"word":    Int16,
	"long":    Int32,
	"int":     Int32,
	"quad":    Int64,
	"float":   Float32,
	"double":  Float64,
	"cfloat":  Complex64,
	"cdouble": Complex128,
	"str":     String,
}

// All returns every defined kind in registry order.
func All() []Kind {
	out := make([]Kind, 0, numKinds-1)
	for k := Int8; k < numKinds; k++ {
		out = append(out, k)
	}

	return out
}

// Valid reports whether k is a registered kind.
func (k Kind) Valid() bool { return k > Invalid && k < numKinds }

// Size returns the element size in bytes (0 for Invalid).
func (k Kind) Size() int {
	if !k.Valid() {
		return 0
	}

	return table[k].size
}

// Align returns the required alignment of one element in bytes.
func (k Kind) Align() int {
	if !k.Valid() {
		return 0
	}

	return table[k].align
}

// String returns the lower-case registry name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}

	return table[k].name
}

// IsInteger reports whether k is one of the signed integer kinds.
func (k Kind) IsInteger() bool { return k.Valid() && table[k].class == classInteger }

// IsFloat reports whether k is Float32 or Float64.
func (k Kind) IsFloat() bool { return k.Valid() && table[k].class == classFloat }

// IsReal reports whether k is an integer or float kind.
func (k Kind) IsReal() bool { return k.IsInteger() || k.IsFloat() }

// IsComplex reports whether k is Complex64 or Complex128.
func (k Kind) IsComplex() bool { return k.Valid() && table[k].class == classComplex }

// IsNumeric reports whether k is any numeric kind.
func (k Kind) IsNumeric() bool { return k.IsReal() || k.IsComplex() }

// RealPart returns the real kind of a complex kind, or k itself.
func (k Kind) RealPart() Kind {
	switch k {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	default:
		return k
	}
}

// ComplexOf returns the narrowest complex kind able to hold k.
// Integers and Float32 map to Complex64; Float64 maps to Complex128.
// String and Invalid map to Invalid.
func (k Kind) ComplexOf() Kind {
	switch {
	case k == Float64 || k == Complex128:
		return Complex128
	case k.IsNumeric():
		return Complex64
	default:
		return Invalid
	}
}

// Parse resolves a kind by registry name or interpreter alias (case-insensitive).
func Parse(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k := Int8; k < numKinds; k++ {
		if table[k].name == n {
			return k, nil
		}
	}
	if k, ok := aliases[n]; ok {
		return k, nil
	}

	return Invalid, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
