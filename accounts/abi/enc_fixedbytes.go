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

import "fmt"

// fixedBytesEncoder handles bytes1 to bytes32. Values are left aligned in
// their word.
type fixedBytesEncoder struct {
	baseEncoder
	val []byte
}

func (e *fixedBytesEncoder) Bind(t *Type) error {
	if t.Category != ElementaryTy || t.Base != FixedBytesBase {
		return categoryErr("fixed bytes", t)
	}
	e.bind(t)
	e.val = nil
	return nil
}

// SetValue requires exactly Size bytes; shorter input is not padded.
func (e *fixedBytesEncoder) SetValue(v interface{}) error {
	raw, err := toBytes(e.typ, v)
	if err != nil {
		return err
	}
	if len(raw) != e.typ.Size {
		return lengthErr(e.typ, e.typ.Size, len(raw))
	}
	e.val, e.set = raw, true
	return nil
}

func (e *fixedBytesEncoder) Value() Value {
	if !e.set {
		return Value{}
	}
	return BytesValue(e.val)
}

func (e *fixedBytesEncoder) EncodedSize() int { return 32 }

func (e *fixedBytesEncoder) Encode(b *EncodeBuffer) error {
	if !e.set {
		return fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	slot, err := b.takeHead(32)
	if err != nil {
		return err
	}
	writeFixedBytes(slot, e.val)
	return nil
}

func (e *fixedBytesEncoder) Decode(b *DecodeBuffer) (Value, error) {
	word, err := b.takeHead(32)
	if err != nil {
		return Value{}, err
	}
	raw, err := readFixedBytes(e.typ, word, b.strict)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: BytesKind, raw: raw}, nil
}

func (e *fixedBytesEncoder) PackedSize() int { return e.typ.Size }

func (e *fixedBytesEncoder) EncodePacked(dst []byte) (int, error) {
	if !e.set {
		return 0, fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	if len(dst) < e.typ.Size {
		return 0, errBufferOverrun
	}
	return copy(dst, e.val), nil
}
