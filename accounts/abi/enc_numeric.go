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
	"math/big"
)

// numericEncoder handles every intN and uintN. The stored value is range
// checked against the bound width; the word written is its two's complement.
// numericEncoder 处理所有 intN 和 uintN 类型。
type numericEncoder struct {
	baseEncoder
	val *big.Int
}

func (e *numericEncoder) Bind(t *Type) error {
	if t.Category != ElementaryTy || (t.Base != IntBase && t.Base != UintBase) {
		return categoryErr("numeric", t)
	}
	e.bind(t)
	e.val = nil
	return nil
}

func (e *numericEncoder) SetValue(v interface{}) error {
	n, err := toBigInt(e.typ, v)
	if err != nil {
		return err
	}
	if err := checkIntegerRange(e.typ, n); err != nil {
		return err
	}
	e.val, e.set = n, true
	return nil
}

// checkIntegerRange reports whether n is representable in t. Unsigned types
// take [0, 2^bits), signed types [-2^(bits-1), 2^(bits-1)).
func checkIntegerRange(t *Type, n *big.Int) error {
	bits := 8 * t.Size
	if t.Base == UintBase {
		switch {
		case n.Sign() < 0:
			return &RangeError{Type: t.Name, Kind: Underflow, Value: n.String()}
		case n.BitLen() > bits:
			return &RangeError{Type: t.Name, Kind: Overflow, Value: n.String()}
		}
		return nil
	}
	if n.Sign() >= 0 {
		if n.BitLen() > bits-1 {
			return &RangeError{Type: t.Name, Kind: Overflow, Value: n.String()}
		}
		return nil
	}
	// -n-1 has the same bit length bound as the positive side.
	if new(big.Int).Not(n).BitLen() > bits-1 {
		return &RangeError{Type: t.Name, Kind: Underflow, Value: n.String()}
	}
	return nil
}

func (e *numericEncoder) Value() Value {
	if !e.set {
		return Value{}
	}
	return BigValue(e.val)
}

func (e *numericEncoder) EncodedSize() int { return 32 }

func (e *numericEncoder) Encode(b *EncodeBuffer) error {
	if !e.set {
		return fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	slot, err := b.takeHead(32)
	if err != nil {
		return err
	}
	putBigWord(slot, e.val)
	return nil
}

func (e *numericEncoder) Decode(b *DecodeBuffer) (Value, error) {
	word, err := b.takeHead(32)
	if err != nil {
		return Value{}, err
	}
	n, err := readInteger(e.typ, word, b.strict)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: IntKind, num: n}, nil
}

func (e *numericEncoder) PackedSize() int { return e.typ.Size }

func (e *numericEncoder) EncodePacked(dst []byte) (int, error) {
	if !e.set {
		return 0, fmt.Errorf("%w: %s", errNoValue, e.typ)
	}
	if len(dst) < e.typ.Size {
		return 0, errBufferOverrun
	}
	putBigPacked(dst[:e.typ.Size], e.val)
	return e.typ.Size, nil
}
