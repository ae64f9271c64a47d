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
	"unicode/utf8"
)

// bytesEncoder handles the two dynamic byte string types. With text set it
// is the string encoder; the wire layout is identical.
// bytesEncoder 处理 bytes 与 string 两种动态字节串类型。
type bytesEncoder struct {
	baseEncoder
	text bool
	val  []byte
}

func (e *bytesEncoder) category() Category {
	if e.text {
		return StringTy
	}
	return BytesTy
}

func (e *bytesEncoder) Bind(t *Type) error {
	if t.Category != e.category() {
		return categoryErr(e.category().String(), t)
	}
	e.bind(t)
	e.val = nil
	return nil
}

func (e *bytesEncoder) SetValue(v interface{}) error {
	if e.text {
		s, err := toText(e.typ, v)
		if err != nil {
			return err
		}
		e.val = []byte(s)
	} else {
		raw, err := toBytes(e.typ, v)
		if err != nil {
			return err
		}
		e.val = raw
	}
	e.set = true
	return nil
}

func (e *bytesEncoder) Value() Value {
	switch {
	case !e.set:
		return Value{}
	case e.text:
		return StringValue(string(e.val))
	default:
		return BytesValue(e.val)
	}
}

func (e *bytesEncoder) EncodedSize() int {
	return 32 + bytesSliceSize(len(e.val))
}

func (e *bytesEncoder) Encode(b *EncodeBuffer) error {
	if !e.set {
		return fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	slot, err := b.takeHead(32)
	if err != nil {
		return err
	}
	payload, offset, err := b.takeData(bytesSliceSize(len(e.val)))
	if err != nil {
		return err
	}
	putUint64Word(slot, uint64(offset))
	writeBytesSlice(payload, e.val)
	return nil
}

func (e *bytesEncoder) Decode(b *DecodeBuffer) (Value, error) {
	offset, err := readOffset(b)
	if err != nil {
		return Value{}, err
	}
	raw, err := readPayload(b, offset)
	if err != nil {
		return Value{}, err
	}
	if !e.text {
		return Value{kind: BytesKind, raw: raw}, nil
	}
	if b.strict && !utf8.Valid(raw) {
		return Value{}, fmt.Errorf("%w: %q", errBadUTF8, raw)
	}
	return StringValue(string(raw)), nil
}

func (e *bytesEncoder) PackedSize() int { return len(e.val) }

func (e *bytesEncoder) EncodePacked(dst []byte) (int, error) {
	if !e.set {
		return 0, fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	if len(dst) < len(e.val) {
		return 0, errBufferOverrun
	}
	return copy(dst, e.val), nil
}
