// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"fmt"
	"strconv"
)

// Category is the top-level kind of an ABI type.
// Category 是 ABI 类型的顶层类别。
type Category byte

// Type categories
const (
	ElementaryTy Category = iota
	FixedArrayTy
	DynamicArrayTy
	StringTy
	BytesTy
)

func (c Category) String() string {
	switch c {
	case ElementaryTy:
		return "elementary"
	case FixedArrayTy:
		return "fixed array"
	case DynamicArrayTy:
		return "dynamic array"
	case StringTy:
		return "string"
	case BytesTy:
		return "bytes"
	default:
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
}

// ElementaryBase refines ElementaryTy.
type ElementaryBase byte

const (
	NoneBase ElementaryBase = iota
	IntBase
	UintBase
	FixedBytesBase
	AddressBase
	BoolBase
)

func (b ElementaryBase) String() string {
	switch b {
	case NoneBase:
		return "none"
	case IntBase:
		return "int"
	case UintBase:
		return "uint"
	case FixedBytesBase:
		return "bytes"
	case AddressBase:
		return "address"
	case BoolBase:
		return "bool"
	default:
		return "ElementaryBase(" + strconv.Itoa(int(b)) + ")"
	}
}

// Type is the descriptor of one canonical ABI type. Descriptors are created by
// a Registry, cached for the life of the process and never modified, so they
// may be shared freely between goroutines.
// Type 是一个规范 ABI 类型的描述符，由 Registry 创建并缓存，创建后不可变。
type Type struct {
	Name     string // canonical type string, e.g. "uint8[2][]"
	Category Category
	Base     ElementaryBase // NoneBase unless Category is ElementaryTy
	Size     int            // primitive byte size 1..32, 0 for string, bytes and arrays

	// Array relative fields
	Length int   // outermost dimension, 0 if dynamic
	Dims   []int // dimension sizes, outermost first; 0 marks a dynamic dimension
	Elem   *Type // base descriptor of an array, e.g. uint8 for uint8[2][]

	inner *Type // descriptor with the outermost dimension stripped
}

// String implements Stringer.
func (t *Type) String() string {
	return t.Name
}

// Equal reports whether both descriptors denote the same canonical type.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Name == o.Name
}

// IsArray reports whether t is a fixed or dynamic array.
func (t *Type) IsArray() bool {
	return t.Category == FixedArrayTy || t.Category == DynamicArrayTy
}

// IsDynamic reports whether values of t are pointer-indirected into the data
// area. This holds exactly for string, bytes and dynamic arrays.
// IsDynamic 报告该类型的值是否通过偏移量间接存放在数据区（string、bytes、动态数组）。
func (t *Type) IsDynamic() bool {
	return t.Category == StringTy || t.Category == BytesTy || t.Category == DynamicArrayTy
}

// Inner returns the descriptor with the outermost dimension removed, i.e.
// uint8[2] for uint8[2][3] and uint8 for uint8[3]. It returns nil for
// non-array types.
func (t *Type) Inner() *Type {
	return t.inner
}

// hasDynamicElem reports whether a fixed array carries dynamic data anywhere
// below its outermost dimension (string[3], bytes[2], uint256[][2], ...).
// Such arrays have no inline layout in this codec.
func (t *Type) hasDynamicElem() bool {
	if !t.IsArray() {
		return false
	}
	for _, d := range t.Dims[1:] {
		if d == 0 {
			return true
		}
	}
	return t.Elem.IsDynamic()
}

// staticElems returns how many consecutive 32 byte words a static value of t
// occupies: 1 for elementary types and product(dims) for fixed arrays.
func (t *Type) staticElems() int {
	if t.Category != FixedArrayTy {
		return 1
	}
	n := 1
	for _, d := range t.Dims {
		n *= d
	}
	return n
}

// HeadSize returns the number of bytes a value of t occupies in the head of an
// encoding: 32 for elementary and dynamic types, 32*product(dims) for inline
// fixed arrays.
// HeadSize 返回类型在头部占用的字节数。
func HeadSize(t *Type) int {
	if t.Category == FixedArrayTy && !t.hasDynamicElem() {
		return 32 * t.staticElems()
	}
	return 32
}

// HeadLength returns the combined head size of an ordered parameter list.
func HeadLength(types ...*Type) int {
	var n int
	for _, t := range types {
		n += HeadSize(t)
	}
	return n
}

// newElementaryType builds the table entry for one elementary name.
func newElementaryType(name string, cat Category, base ElementaryBase, size int) *Type {
	return &Type{Name: name, Category: cat, Base: base, Size: size}
}

// newArrayType wraps inner into one more (outermost) dimension of length n.
func newArrayType(inner *Type, n int) *Type {
	t := &Type{
		Name:   inner.Name + "[" + dimString(n) + "]",
		Length: n,
		inner:  inner,
	}
	if n == 0 {
		t.Category = DynamicArrayTy
	} else {
		t.Category = FixedArrayTy
	}
	if inner.IsArray() {
		t.Dims = append([]int{n}, inner.Dims...)
		t.Elem = inner.Elem
	} else {
		t.Dims = []int{n}
		t.Elem = inner
	}
	return t
}

func dimString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// elementaryTypes is the fixed table of canonical elementary names. It is
// built once and never written afterwards.
var elementaryTypes = buildElementaryTypes()

func buildElementaryTypes() map[string]*Type {
	table := map[string]*Type{
		"bool":    newElementaryType("bool", ElementaryTy, BoolBase, 1),
		"address": newElementaryType("address", ElementaryTy, AddressBase, 20),
		"string":  newElementaryType("string", StringTy, NoneBase, 0),
		"bytes":   newElementaryType("bytes", BytesTy, NoneBase, 0),
	}
	for n := 1; n <= 32; n++ {
		name := fmt.Sprintf("bytes%d", n)
		table[name] = newElementaryType(name, ElementaryTy, FixedBytesBase, n)

		bits := strconv.Itoa(n * 8)
		table["int"+bits] = newElementaryType("int"+bits, ElementaryTy, IntBase, n)
		table["uint"+bits] = newElementaryType("uint"+bits, ElementaryTy, UintBase, n)
	}
	return table
}
