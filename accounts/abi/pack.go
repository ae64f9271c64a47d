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
	"github.com/sunyihoo/evmkit/common"
)

// pad32 rounds n up to a multiple of 32.
func pad32(n int) int {
	return (n + 31) / 32 * 32
}

// writeBool writes 1 or 0 into the 32 byte slot.
func writeBool(slot []byte, b bool) {
	if b {
		putUint64Word(slot, 1)
	} else {
		putUint64Word(slot, 0)
	}
}

// writeAddress left pads addr to 32 bytes.
func writeAddress(slot []byte, addr common.Address) {
	clear(slot[:32-common.AddressLength])
	copy(slot[32-common.AddressLength:], addr[:])
}

// writeFixedBytes right pads raw to 32 bytes.
// writeFixedBytes 将定长字节右填充到 32 字节。
func writeFixedBytes(slot []byte, raw []byte) {
	n := copy(slot, raw)
	clear(slot[n:])
}

// writeBytesSlice writes raw as [L, V] into dst, the canonical representation
// of a byte string: the length word followed by raw right padded to a word
// boundary. dst must hold exactly 32+pad32(len(raw)) bytes.
// writeBytesSlice 将字节串写成 [L, V] 形式：长度字后接右填充到 32 字节对齐的数据。
func writeBytesSlice(dst []byte, raw []byte) {
	putUint64Word(dst[:32], uint64(len(raw)))
	writeFixedBytes(dst[32:], raw)
}

// bytesSliceSize is the data area size of a byte string of n bytes.
func bytesSliceSize(n int) int {
	return 32 + pad32(n)
}

// EncodePacked concatenates the non-standard packed encodings of the given
// encoders: integers, bools, addresses and bytesN in their natural width,
// bytes and string unpadded, arrays of static elements as 32 byte words.
// Nested arrays and arrays of dynamic elements are not supported. The packed
// form is ambiguous and cannot be decoded.
// EncodePacked 拼接各编码器的紧凑编码（不可解码）。
func EncodePacked(encs ...Encoder) ([]byte, error) {
	size := 0
	for _, enc := range encs {
		size += enc.PackedSize()
	}
	out := make([]byte, size)
	pos := 0
	for _, enc := range encs {
		n, err := enc.EncodePacked(out[pos:])
		if err != nil {
			return nil, err
		}
		pos += n
	}
	return out[:pos], nil
}
