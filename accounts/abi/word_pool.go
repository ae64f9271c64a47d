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
	"math/big"
	"sync"

	"github.com/holiman/uint256"
)

// wordWriter writes one 256-bit value as a 32 byte big-endian word without
// any range check. It is used for offsets and lengths, which are computed by
// the codec itself, and for integers whose range was checked by SetValue.
// wordWriter 无范围检查地写出一个 32 字节大端字（用于偏移量、长度和已校验的整数）。
type wordWriter struct {
	word uint256.Int
}

var wordPool = sync.Pool{
	New: func() any {
		return new(wordWriter)
	},
}

// getWord acquires a writer from the pool; pair every call with a deferred
// putWord so the writer is returned on every exit path.
func getWord() *wordWriter {
	return wordPool.Get().(*wordWriter)
}

func putWord(w *wordWriter) {
	if w == nil {
		return
	}
	w.word.Clear()
	wordPool.Put(w)
}

// putUint64Word writes n into the 32 byte slot dst.
func putUint64Word(dst []byte, n uint64) {
	w := getWord()
	defer putWord(w)

	w.word.SetUint64(n)
	w.word.PutUint256(dst)
}

// putBigWord writes v into the 32 byte slot dst in two's complement. v must
// fit into 256 bits.
func putBigWord(dst []byte, v *big.Int) {
	w := getWord()
	defer putWord(w)

	w.word.SetFromBig(v)
	w.word.PutUint256(dst)
}

// putBigPacked writes the low len(dst) bytes of v in two's complement.
func putBigPacked(dst []byte, v *big.Int) {
	w := getWord()
	defer putWord(w)

	w.word.SetFromBig(v)
	word := w.word.Bytes32()
	copy(dst, word[32-len(dst):])
}
