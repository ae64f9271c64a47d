// Copyright 2014 The go-ethereum Authors
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

package crypto

import (
	"bytes"
	"testing"

	"github.com/sunyihoo/evmkit/common"
)

// These tests are sanity checks.
// They should ensure that we don't e.g. use Sha3-224 instead of Sha3-256
// and that the sha3 library uses keccak-f permutation.
func TestKeccak256Hash(t *testing.T) {
	msg := []byte("abc")
	exp := common.FromHex("4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	checkhash(t, "Sha3-256-array", func(in []byte) []byte { h := Keccak256Hash(in); return h[:] }, msg, exp)
	checkhash(t, "Sha3-256", func(in []byte) []byte { return Keccak256(in) }, msg, exp)
}

func TestKeccak256Empty(t *testing.T) {
	exp := common.FromHex("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	checkhash(t, "empty", func(in []byte) []byte { return Keccak256(in) }, nil, exp)
}

func TestHashData(t *testing.T) {
	st := NewKeccakState()
	// The state is reset between calls, so hashing twice yields the same digest.
	first := HashData(st, []byte("baz(uint32,bool)"))
	second := HashData(st, []byte("baz(uint32,bool)"))
	if first != second {
		t.Fatalf("state leaked between calls: %x != %x", first, second)
	}
	if !bytes.Equal(first[:4], []byte{0xcd, 0xcd, 0x77, 0xc0}) {
		t.Fatalf("selector mismatch: %x", first[:4])
	}
	if Keccak256Hash([]byte("baz(uint32,"), []byte("bool)")) != first {
		t.Fatal("multi-part input differs from single input")
	}
}

func checkhash(t *testing.T, name string, f func([]byte) []byte, msg, exp []byte) {
	sum := f(msg)
	if !bytes.Equal(exp, sum) {
		t.Fatalf("hash %s mismatch: want: %x have: %x", name, exp, sum)
	}
}
