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
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/sunyihoo/evmkit/common"
)

func TestValueConstructors(t *testing.T) {
	n := big.NewInt(5)
	v := BigValue(n)
	n.SetInt64(6)
	assert.Equal(t, int64(5), v.Big().Int64(), "BigValue copies its input")

	assert.True(t, Uint(uint8(5)).Equal(v))
	assert.True(t, Int(int64(5)).Equal(v))
	assert.True(t, U256Value(uint256.NewInt(5)).Equal(v))
	assert.False(t, Int(-5).Equal(v))
	assert.False(t, BoolValue(true).Equal(v))

	raw := []byte{1, 2}
	b := BytesValue(raw)
	raw[0] = 9
	assert.Equal(t, []byte{1, 2}, b.Bytes(), "BytesValue copies its input")
}

func TestValueAccessors(t *testing.T) {
	addr := common.HexToAddress("0x0102")
	arr := ArrayValue(Uint(uint8(1)), StringValue("x"), AddressValue(addr))

	assert.Equal(t, ArrayKind, arr.Kind())
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, StringKind, arr.Index(1).Kind())
	assert.Len(t, arr.Elems(), 3)
	assert.Equal(t, 4, StringValue("abcd").Len())
	assert.Equal(t, 2, BytesValue([]byte{1, 2}).Len())
	assert.Equal(t, 0, BoolValue(true).Len())
	assert.Nil(t, StringValue("1").Big())

	var zero Value
	assert.False(t, zero.IsValid())
	assert.True(t, zero.Equal(Value{}))
	assert.Nil(t, zero.Interface())
	assert.Equal(t, "<invalid>", zero.String())
	assert.Equal(t, "invalid", zero.Kind().String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestValueInterface(t *testing.T) {
	addr := common.HexToAddress("0xff")
	v := ArrayValue(Int(-3), BoolValue(true), AddressValue(addr), BytesValue([]byte{7}), StringValue("s"))
	assert.Equal(t, []interface{}{big.NewInt(-3), true, addr, []byte{7}, "s"}, v.Interface())
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Int(-42), "-42"},
		{BoolValue(false), "false"},
		{AddressValue(common.HexToAddress("0xab")), "0x00000000000000000000000000000000000000ab"},
		{BytesValue(nil), "0x"},
		{StringValue("a\"b"), `"a\"b"`},
		{ArrayValue(), "[]"},
		{ArrayValue(ArrayValue(Uint(uint(1))), ArrayValue()), "[[1], []]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}

func TestValueEqual(t *testing.T) {
	a := ArrayValue(Uint(uint8(1)), Uint(uint8(2)))
	assert.True(t, a.Equal(ArrayValue(Int(1), Int(2))))
	assert.False(t, a.Equal(ArrayValue(Int(1))))
	assert.False(t, a.Equal(ArrayValue(Int(1), Int(3))))
	assert.True(t, BytesValue(nil).Equal(BytesValue([]byte{})))
	assert.False(t, StringValue("a").Equal(BytesValue([]byte("a"))))
}
