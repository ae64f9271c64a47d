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

	"github.com/sunyihoo/evmkit/common"
)

type addressEncoder struct {
	baseEncoder
	val common.Address
}

func (e *addressEncoder) Bind(t *Type) error {
	if t.Category != ElementaryTy || t.Base != AddressBase {
		return categoryErr("address", t)
	}
	e.bind(t)
	e.val = common.Address{}
	return nil
}

func (e *addressEncoder) SetValue(v interface{}) error {
	addr, err := toAddress(e.typ, v)
	if err != nil {
		return err
	}
	e.val, e.set = addr, true
	return nil
}

func (e *addressEncoder) Value() Value {
	if !e.set {
		return Value{}
	}
	return AddressValue(e.val)
}

func (e *addressEncoder) EncodedSize() int { return 32 }

func (e *addressEncoder) Encode(b *EncodeBuffer) error {
	if !e.set {
		return fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	slot, err := b.takeHead(32)
	if err != nil {
		return err
	}
	writeAddress(slot, e.val)
	return nil
}

func (e *addressEncoder) Decode(b *DecodeBuffer) (Value, error) {
	word, err := b.takeHead(32)
	if err != nil {
		return Value{}, err
	}
	addr, err := readAddress(word, b.strict)
	if err != nil {
		return Value{}, err
	}
	return AddressValue(addr), nil
}

func (e *addressEncoder) PackedSize() int { return common.AddressLength }

func (e *addressEncoder) EncodePacked(dst []byte) (int, error) {
	if !e.set {
		return 0, fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	if len(dst) < common.AddressLength {
		return 0, errBufferOverrun
	}
	return copy(dst, e.val[:]), nil
}
