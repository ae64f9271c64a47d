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
	"fmt"
)

// Encoder converts values of one ABI type between their native form and the
// ABI wire format. An encoder is bound to a type descriptor once, receives a
// value through SetValue and writes it into an EncodeBuffer; Decode reads a
// value of the bound type without touching the stored one.
//
// Encoders are cheap and are not safe for concurrent use. Type descriptors
// are, so independent encoders for the same type may run on different
// goroutines.
// Encoder 在本地值与 ABI 线格式之间转换某一 ABI 类型的值；编码器不可并发使用。
type Encoder interface {
	// Type returns the bound descriptor, or nil before Bind.
	Type() *Type

	// Bind attaches the encoder to t and drops any stored value. It fails
	// with ErrUnsupportedCategory if the encoder does not implement t.
	Bind(t *Type) error

	// SetValue converts v to the bound type and stores it. Out of range
	// numbers and element count mismatches return a *RangeError.
	SetValue(v interface{}) error

	// Value returns the stored value, or the zero Value if none is set.
	Value() Value

	// HeadSize is the number of head bytes Encode consumes.
	HeadSize() int

	// EncodedSize is the total number of head and data bytes Encode consumes
	// for the stored value.
	EncodedSize() int

	// Encode writes the stored value into the next head slot of b and, for
	// dynamic types, its payload into the data area of b.
	Encode(b *EncodeBuffer) error

	// Decode reads one value of the bound type from the next head slot of b.
	Decode(b *DecodeBuffer) (Value, error)

	// PackedSize is the length of the packed encoding of the stored value.
	PackedSize() int

	// EncodePacked writes the packed encoding to the start of dst and
	// returns the number of bytes written.
	EncodePacked(dst []byte) (int, error)
}

// baseEncoder holds what every encoder shares.
type baseEncoder struct {
	typ *Type
	set bool
}

func (e *baseEncoder) Type() *Type { return e.typ }

func (e *baseEncoder) HeadSize() int { return HeadSize(e.typ) }

func (e *baseEncoder) bind(t *Type) {
	e.typ, e.set = t, false
}

// NewEncoder returns an encoder bound to t. It fails with
// ErrUnsupportedCategory for types without a supported layout, such as fixed
// arrays of dynamic elements.
// NewEncoder 返回绑定到类型 t 的编码器。
func NewEncoder(t *Type) (Encoder, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrTypeResolution)
	}
	var enc Encoder
	switch t.Category {
	case ElementaryTy:
		switch t.Base {
		case IntBase, UintBase:
			enc = new(numericEncoder)
		case BoolBase:
			enc = new(boolEncoder)
		case AddressBase:
			enc = new(addressEncoder)
		case FixedBytesBase:
			enc = new(fixedBytesEncoder)
		}
	case BytesTy:
		enc = new(bytesEncoder)
	case StringTy:
		enc = &bytesEncoder{text: true}
	case FixedArrayTy:
		enc = new(fixedArrayEncoder)
	case DynamicArrayTy:
		enc = new(dynamicArrayEncoder)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: no encoder for %s", ErrUnsupportedCategory, t)
	}
	if err := enc.Bind(t); err != nil {
		return nil, err
	}
	return enc, nil
}

// NewEncoderFor resolves name in the default registry and returns an
// encoder bound to it.
func NewEncoderFor(name string) (Encoder, error) {
	t, err := DefaultRegistry.Resolve(name)
	if err != nil {
		return nil, err
	}
	return NewEncoder(t)
}

// Encode writes the values stored in encs as one ABI parameter list: the
// heads in order, followed by the payloads of the dynamic values.
// Encode 将各编码器中的值编码为一个 ABI 参数列表。
func Encode(encs ...Encoder) ([]byte, error) {
	var headLength, size int
	for _, enc := range encs {
		headLength += enc.HeadSize()
		size += enc.EncodedSize()
	}
	out := make([]byte, size)
	buf := NewEncodeBuffer(out, headLength)
	for _, enc := range encs {
		if err := enc.Encode(buf); err != nil {
			return nil, err
		}
	}
	if err := buf.Finish(); err != nil {
		return nil, err
	}
	return out, nil
}

// Decode reads one value per type from data, which must hold an ABI
// parameter list of exactly those types. Trailing bytes are ignored.
// Decode 从数据中按类型依次解码参数列表。
func Decode(data []byte, strict bool, types ...*Type) ([]Value, error) {
	buf := NewDecodeBuffer(data, strict)
	out := make([]Value, 0, len(types))
	for _, t := range types {
		enc, err := NewEncoder(t)
		if err != nil {
			return nil, err
		}
		v, err := enc.Decode(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
