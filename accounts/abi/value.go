// Copyright 2024 The go-ethereum Authors
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
	"bytes"
	"math/big"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/evmkit/common"
	"github.com/sunyihoo/evmkit/common/hexutil"
	"golang.org/x/exp/constraints"
)

// Kind is the tag of a Value.
type Kind uint8

const (
	InvalidKind Kind = iota
	IntKind          // every intN and uintN
	BoolKind
	AddressKind
	BytesKind // bytesN and bytes
	StringKind
	ArrayKind // fixed and dynamic arrays
)

var kindNames = [...]string{"invalid", "int", "bool", "address", "bytes", "string", "array"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the native value exchanged with encoders: a tagged union over
// integers, booleans, addresses, byte strings, text and arrays of values.
// Decoding always produces Values; encoding accepts Values as well as plain
// Go values (see Encoder.SetValue).
// Value 是与编码器交换的本地值：整数、布尔、地址、字节串、字符串和数组的标签联合。
type Value struct {
	kind  Kind
	num   *big.Int
	flag  bool
	addr  common.Address
	raw   []byte
	text  string
	elems []Value
}

// BigValue returns an integer value holding a copy of n.
func BigValue(n *big.Int) Value {
	return Value{kind: IntKind, num: new(big.Int).Set(n)}
}

// U256Value returns an integer value from a uint256.
func U256Value(n *uint256.Int) Value {
	return Value{kind: IntKind, num: n.ToBig()}
}

// Uint returns an integer value from any unsigned Go integer.
func Uint[T constraints.Unsigned](n T) Value {
	return Value{kind: IntKind, num: new(big.Int).SetUint64(uint64(n))}
}

// Int returns an integer value from any signed Go integer.
func Int[T constraints.Signed](n T) Value {
	return Value{kind: IntKind, num: big.NewInt(int64(n))}
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: BoolKind, flag: b}
}

// AddressValue returns an address value.
func AddressValue(a common.Address) Value {
	return Value{kind: AddressKind, addr: a}
}

// BytesValue returns a byte string value holding a copy of b.
func BytesValue(b []byte) Value {
	return Value{kind: BytesKind, raw: common.CopyBytes(b)}
}

// StringValue returns a text value.
func StringValue(s string) Value {
	return Value{kind: StringKind, text: s}
}

// ArrayValue returns an array of the given elements.
func ArrayValue(elems ...Value) Value {
	return Value{kind: ArrayKind, elems: elems}
}

// Kind returns the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds anything.
func (v Value) IsValid() bool { return v.kind != InvalidKind }

// Big returns a copy of the integer held by v, or nil for other kinds.
func (v Value) Big() *big.Int {
	if v.kind != IntKind {
		return nil
	}
	return new(big.Int).Set(v.num)
}

// Bool returns the boolean held by v.
func (v Value) Bool() bool { return v.flag }

// Address returns the address held by v.
func (v Value) Address() common.Address { return v.addr }

// Bytes returns the byte string held by v. The slice is shared with v.
func (v Value) Bytes() []byte { return v.raw }

// Text returns the string held by v.
func (v Value) Text() string { return v.text }

// Len returns the element count of an array, the length of a byte string or
// of a text value, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case ArrayKind:
		return len(v.elems)
	case BytesKind:
		return len(v.raw)
	case StringKind:
		return len(v.text)
	}
	return 0
}

// Index returns the i'th element of an array value.
func (v Value) Index(i int) Value { return v.elems[i] }

// Elems returns the elements of an array value. The slice is shared with v.
func (v Value) Elems() []Value { return v.elems }

// Equal reports whether v and o hold the same kind and contents.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case InvalidKind:
		return true
	case IntKind:
		return v.num.Cmp(o.num) == 0
	case BoolKind:
		return v.flag == o.flag
	case AddressKind:
		return v.addr == o.addr
	case BytesKind:
		return bytes.Equal(v.raw, o.raw)
	case StringKind:
		return v.text == o.text
	case ArrayKind:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts v into the plain Go value callers usually want:
// *big.Int, bool, common.Address, []byte, string or []interface{}.
func (v Value) Interface() interface{} {
	switch v.kind {
	case IntKind:
		return v.Big()
	case BoolKind:
		return v.flag
	case AddressKind:
		return v.addr
	case BytesKind:
		return v.raw
	case StringKind:
		return v.text
	case ArrayKind:
		out := make([]interface{}, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.Interface()
		}
		return out
	}
	return nil
}

// String renders v for logs and the command line: decimal integers, 0x hex
// for addresses and byte strings, quoted text and bracketed arrays.
func (v Value) String() string {
	var sb strings.Builder
	v.writeTo(&sb)
	return sb.String()
}

func (v Value) writeTo(sb *strings.Builder) {
	switch v.kind {
	case IntKind:
		sb.WriteString(v.num.String())
	case BoolKind:
		sb.WriteString(strconv.FormatBool(v.flag))
	case AddressKind:
		sb.WriteString(v.addr.Hex())
	case BytesKind:
		sb.WriteString(hexutil.Encode(v.raw))
	case StringKind:
		sb.WriteString(strconv.Quote(v.text))
	case ArrayKind:
		sb.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.writeTo(sb)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString("<invalid>")
	}
}
