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

// arrayEncoder is shared by the fixed and dynamic array encoders. Each stored
// element gets its own child encoder; tmpl is a spare child used for decoding.
// arrayEncoder 为定长与动态数组编码器共享，每个元素对应一个子编码器。
type arrayEncoder struct {
	baseEncoder
	inner *Type
	tmpl  Encoder
	elems []Encoder
}

func (e *arrayEncoder) bindArray(t *Type) error {
	tmpl, err := NewEncoder(t.Inner())
	if err != nil {
		return fmt.Errorf("%s: %w", t, err)
	}
	e.bind(t)
	e.inner, e.tmpl, e.elems = t.Inner(), tmpl, nil
	return nil
}

// setElems converts every element of v. want is the required element count,
// or -1 for any count.
func (e *arrayEncoder) setElems(v interface{}, want int) error {
	in, err := toElems(e.typ, v)
	if err != nil {
		return err
	}
	if want >= 0 && len(in) != want {
		return lengthErr(e.typ, want, len(in))
	}
	elems := make([]Encoder, len(in))
	for i, x := range in {
		child, err := NewEncoder(e.inner)
		if err != nil {
			return err
		}
		if err := child.SetValue(x); err != nil {
			return fmt.Errorf("%s element %d: %w", e.typ, i, err)
		}
		elems[i] = child
	}
	e.elems, e.set = elems, true
	return nil
}

func (e *arrayEncoder) Value() Value {
	if !e.set {
		return Value{}
	}
	vals := make([]Value, len(e.elems))
	for i, child := range e.elems {
		vals[i] = child.Value()
	}
	return ArrayValue(vals...)
}

// encodeElems writes every element into b in order.
func (e *arrayEncoder) encodeElems(b *EncodeBuffer) error {
	for _, child := range e.elems {
		if err := child.Encode(b); err != nil {
			return err
		}
	}
	return nil
}

// decodeElems reads n elements of the inner type from b. The heads of all
// n elements must fit into the remaining head before anything is allocated.
func (e *arrayEncoder) decodeElems(b *DecodeBuffer, n int) (Value, error) {
	if need := n * HeadSize(e.inner); need > len(b.head) {
		return Value{}, fmt.Errorf("%w: %s needs %d bytes at offset %d, have %d", errShortData, e.typ, need, b.Consumed(), len(b.head))
	}
	vals := make([]Value, n)
	for i := range vals {
		v, err := e.tmpl.Decode(b)
		if err != nil {
			return Value{}, fmt.Errorf("%s element %d: %w", e.typ, i, err)
		}
		vals[i] = v
	}
	return ArrayValue(vals...), nil
}

func (e *arrayEncoder) PackedSize() int { return 32 * len(e.elems) }

// EncodePacked writes every element in its standard 32 byte form. Only
// arrays of elementary elements can be packed.
func (e *arrayEncoder) EncodePacked(dst []byte) (int, error) {
	if !e.set {
		return 0, fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	if e.inner.Category != ElementaryTy {
		return 0, fmt.Errorf("%w: packed encoding of %s", ErrUnsupportedCategory, e.typ)
	}
	size := e.PackedSize()
	if len(dst) < size {
		return 0, errBufferOverrun
	}
	if err := e.encodeElems(NewEncodeBuffer(dst[:size], size)); err != nil {
		return 0, err
	}
	return size, nil
}

// fixedArrayEncoder handles T[k] for static T. The elements are laid out
// inline in the head, 32*k*product(inner dims) bytes in total.
type fixedArrayEncoder struct {
	arrayEncoder
}

// Bind rejects fixed arrays with dynamic data below their outer dimension,
// which have no inline layout.
func (e *fixedArrayEncoder) Bind(t *Type) error {
	if t.Category != FixedArrayTy {
		return categoryErr("fixed array", t)
	}
	if t.hasDynamicElem() {
		return fmt.Errorf("%w: fixed array %s of dynamic elements", ErrUnsupportedCategory, t)
	}
	return e.bindArray(t)
}

func (e *fixedArrayEncoder) SetValue(v interface{}) error {
	return e.setElems(v, e.typ.Length)
}

func (e *fixedArrayEncoder) EncodedSize() int { return e.HeadSize() }

func (e *fixedArrayEncoder) Encode(b *EncodeBuffer) error {
	if !e.set {
		return fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	return e.encodeElems(b)
}

func (e *fixedArrayEncoder) Decode(b *DecodeBuffer) (Value, error) {
	return e.decodeElems(b, e.typ.Length)
}

// dynamicArrayEncoder handles T[]. The head holds an offset to a count word
// followed by a nested frame with the elements encoded as a parameter list.
// dynamicArrayEncoder 处理 T[]：头部存偏移量，数据区为元素个数及嵌套帧。
type dynamicArrayEncoder struct {
	arrayEncoder
}

func (e *dynamicArrayEncoder) Bind(t *Type) error {
	if t.Category != DynamicArrayTy {
		return categoryErr("dynamic array", t)
	}
	return e.bindArray(t)
}

func (e *dynamicArrayEncoder) SetValue(v interface{}) error {
	return e.setElems(v, -1)
}

// frameSize is the size of the element frame without the count word.
func (e *dynamicArrayEncoder) frameSize() int {
	n := 0
	for _, child := range e.elems {
		n += child.EncodedSize()
	}
	return n
}

func (e *dynamicArrayEncoder) EncodedSize() int {
	return 32 + 32 + e.frameSize()
}

func (e *dynamicArrayEncoder) Encode(b *EncodeBuffer) error {
	if !e.set {
		return fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	slot, err := b.takeHead(32)
	if err != nil {
		return err
	}
	frame, offset, err := b.Frame(len(e.elems), len(e.elems)*HeadSize(e.inner), e.frameSize())
	if err != nil {
		return err
	}
	putUint64Word(slot, uint64(offset))
	if err := e.encodeElems(frame); err != nil {
		return err
	}
	return frame.Finish()
}

func (e *dynamicArrayEncoder) Decode(b *DecodeBuffer) (Value, error) {
	offset, err := readOffset(b)
	if err != nil {
		return Value{}, err
	}
	count, frame, err := b.Frame(offset)
	if err != nil {
		return Value{}, err
	}
	// Every element needs at least its head; reject counts the data cannot hold.
	if count > uint64(frame.Len()/HeadSize(e.inner)) {
		return Value{}, fmt.Errorf("%w: %d elements of %s in %d bytes", errBadLength, count, e.inner, frame.Len())
	}
	return e.decodeElems(frame, int(count))
}
