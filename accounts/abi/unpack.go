// Copyright 2017 The go-ethereum Authors
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

	"github.com/holiman/uint256"
	"github.com/sunyihoo/evmkit/common"
	"github.com/sunyihoo/evmkit/common/math"
)

var (
	// MaxUint256 is the maximum value that can be represented by a uint256.
	// MaxUint256 是 uint256 可以表示的最大值。
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 256), common.Big1)
	// MaxInt256 is the maximum value that can be represented by a int256.
	// MaxInt256 是 int256 可以表示的最大值。
	MaxInt256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 255), common.Big1)
)

// maxDecodeSize bounds offsets and lengths read from the wire.
const maxDecodeSize = 1 << 32

// readInteger reads the integer of type t from the rightmost t.Size bytes of
// word. Signed values are sign extended from the top bit of that window. In
// strict mode the remaining leading bytes must be the sign extension.
// readInteger 从字的最右 t.Size 字节读取整数，有符号整数进行符号扩展。
func readInteger(t *Type, word []byte, strict bool) (*big.Int, error) {
	lead, body := word[:32-t.Size], word[32-t.Size:]
	neg := t.Base == IntBase && body[0]&0x80 != 0
	if strict {
		fill := byte(0)
		if neg {
			fill = 0xff
		}
		for _, b := range lead {
			if b != fill {
				return nil, fmt.Errorf("%w: %s word %x", errBadPadding, t, word)
			}
		}
	}
	n := new(uint256.Int).SetBytes(body)
	if !neg {
		return n.ToBig(), nil
	}
	// The sign bit sits in byte Size-1 counted from the least significant end.
	n.ExtendSign(n, uint256.NewInt(uint64(t.Size-1)))
	return math.S256(n.ToBig()), nil
}

// readBool reads a bool.
// readBool 读取布尔值。
func readBool(word []byte) (bool, error) {
	for _, b := range word[:31] {
		if b != 0 {
			return false, errBadBool
		}
	}
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errBadBool
	}
}

// readAddress reads the low 20 bytes of word.
func readAddress(word []byte, strict bool) (common.Address, error) {
	if strict && !allZero(word[:32-common.AddressLength]) {
		return common.Address{}, fmt.Errorf("%w: address word %x", errBadPadding, word)
	}
	return common.BytesToAddress(word[32-common.AddressLength:]), nil
}

// readFixedBytes copies the left aligned bytesN value out of word.
// readFixedBytes 读取左对齐的定长字节值。
func readFixedBytes(t *Type, word []byte, strict bool) ([]byte, error) {
	if strict && !allZero(word[t.Size:]) {
		return nil, fmt.Errorf("%w: %s word %x", errBadPadding, t, word)
	}
	return common.CopyBytes(word[:t.Size]), nil
}

// readSize reads an offset or a length word.
func readSize(word []byte) (uint64, error) {
	var n uint256.Int
	n.SetBytes(word)
	if !n.IsUint64() || n.Uint64() > maxDecodeSize {
		return 0, fmt.Errorf("%w: %s", errBadLength, n.Hex())
	}
	return n.Uint64(), nil
}

// readOffset reads the offset held in the next head slot of b.
func readOffset(b *DecodeBuffer) (uint64, error) {
	slot, err := b.takeHead(32)
	if err != nil {
		return 0, err
	}
	off, err := readSize(slot)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errBadOffset, err)
	}
	return off, nil
}

// readPayload reads a length-prefixed byte string at offset. In strict mode
// the padding up to the next word boundary must be present and zero.
// readPayload 读取偏移量处带长度前缀的字节串。
func readPayload(b *DecodeBuffer, offset uint64) ([]byte, error) {
	count, frame, err := b.Frame(offset)
	if err != nil {
		return nil, err
	}
	body, err := frame.slice(0, count)
	if err != nil {
		return nil, err
	}
	if b.strict {
		pad, err := frame.slice(count, uint64(pad32(int(count))-int(count)))
		if err != nil {
			return nil, fmt.Errorf("%w: missing padding: %v", errBadPadding, err)
		}
		if !allZero(pad) {
			return nil, fmt.Errorf("%w: byte string padding %x", errBadPadding, pad)
		}
	}
	return common.CopyBytes(body), nil
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
