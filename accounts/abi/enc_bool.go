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

type boolEncoder struct {
	baseEncoder
	val bool
}

func (e *boolEncoder) Bind(t *Type) error {
	if t.Category != ElementaryTy || t.Base != BoolBase {
		return categoryErr("bool", t)
	}
	e.bind(t)
	e.val = false
	return nil
}

func (e *boolEncoder) SetValue(v interface{}) error {
	b, err := toBool(e.typ, v)
	if err != nil {
		return err
	}
	e.val, e.set = b, true
	return nil
}

func (e *boolEncoder) Value() Value {
	if !e.set {
		return Value{}
	}
	return BoolValue(e.val)
}

func (e *boolEncoder) EncodedSize() int { return 32 }

func (e *boolEncoder) Encode(b *EncodeBuffer) error {
	if !e.set {
		return fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	slot, err := b.takeHead(32)
	if err != nil {
		return err
	}
	writeBool(slot, e.val)
	return nil
}

func (e *boolEncoder) Decode(b *DecodeBuffer) (Value, error) {
	word, err := b.takeHead(32)
	if err != nil {
		return Value{}, err
	}
	v, err := readBool(word)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %x", err, word)
	}
	return BoolValue(v), nil
}

func (e *boolEncoder) PackedSize() int { return 1 }

func (e *boolEncoder) EncodePacked(dst []byte) (int, error) {
	if !e.set {
		return 0, fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	if len(dst) < 1 {
		return 0, errBufferOverrun
	}
	dst[0] = 0
	if e.val {
		dst[0] = 1
	}
	return 1, nil
}
