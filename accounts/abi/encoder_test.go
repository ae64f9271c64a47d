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
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/evmkit/common"
)

// hexWords decodes whitespace separated hex, one 32 byte word per line in
// the tests below.
func hexWords(s string) []byte {
	return common.FromHex(strings.Join(strings.Fields(s), ""))
}

func mustEncoder(t *testing.T, typ string, v interface{}) Encoder {
	t.Helper()
	enc, err := NewEncoderFor(typ)
	require.NoError(t, err, typ)
	require.NoError(t, enc.SetValue(v), typ)
	return enc
}

func TestEncodeUintString(t *testing.T) {
	data, err := Encode(mustEncoder(t, "uint256", 5), mustEncoder(t, "string", "abc"))
	require.NoError(t, err)
	want := hexWords(`
		0000000000000000000000000000000000000000000000000000000000000005
		0000000000000000000000000000000000000000000000000000000000000040
		0000000000000000000000000000000000000000000000000000000000000003
		6162630000000000000000000000000000000000000000000000000000000000`)
	assert.Equal(t, want, data)

	values, err := Decode(data, true, MustResolve("uint256"), MustResolve("string"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), values[0].Big().Int64())
	assert.Equal(t, "abc", values[1].Text())
}

func TestEncodeUint8Slice(t *testing.T) {
	data, err := Encode(mustEncoder(t, "uint8[]", []uint8{1, 2, 3}))
	require.NoError(t, err)
	want := hexWords(`
		0000000000000000000000000000000000000000000000000000000000000020
		0000000000000000000000000000000000000000000000000000000000000003
		0000000000000000000000000000000000000000000000000000000000000001
		0000000000000000000000000000000000000000000000000000000000000002
		0000000000000000000000000000000000000000000000000000000000000003`)
	assert.Equal(t, want, data)
}

// Nested dynamic arrays and arrays of strings, from the Solidity ABI
// specification example g(uint256[][],string[]).
func TestEncodeNestedDynamic(t *testing.T) {
	data, err := Encode(
		mustEncoder(t, "uint256[][]", [][]int{{1, 2}, {3}}),
		mustEncoder(t, "string[]", []string{"one", "two", "three"}),
	)
	require.NoError(t, err)
	want := hexWords(`
		0000000000000000000000000000000000000000000000000000000000000040
		0000000000000000000000000000000000000000000000000000000000000140
		0000000000000000000000000000000000000000000000000000000000000002
		0000000000000000000000000000000000000000000000000000000000000040
		00000000000000000000000000000000000000000000000000000000000000a0
		0000000000000000000000000000000000000000000000000000000000000002
		0000000000000000000000000000000000000000000000000000000000000001
		0000000000000000000000000000000000000000000000000000000000000002
		0000000000000000000000000000000000000000000000000000000000000001
		0000000000000000000000000000000000000000000000000000000000000003
		0000000000000000000000000000000000000000000000000000000000000003
		0000000000000000000000000000000000000000000000000000000000000060
		00000000000000000000000000000000000000000000000000000000000000a0
		00000000000000000000000000000000000000000000000000000000000000e0
		0000000000000000000000000000000000000000000000000000000000000003
		6f6e650000000000000000000000000000000000000000000000000000000000
		0000000000000000000000000000000000000000000000000000000000000003
		74776f0000000000000000000000000000000000000000000000000000000000
		0000000000000000000000000000000000000000000000000000000000000005
		7468726565000000000000000000000000000000000000000000000000000000`)
	assert.Equal(t, want, data)

	values, err := Decode(data, true, MustResolve("uint256[][]"), MustResolve("string[]"))
	require.NoError(t, err)
	assert.Equal(t, "[[1, 2], [3]]", values[0].String())
	assert.Equal(t, `["one", "two", "three"]`, values[1].String())
}

func TestIntegerBoundaries(t *testing.T) {
	var (
		maxUint256 = new(big.Int).Set(MaxUint256)
		maxInt256  = new(big.Int).Set(MaxInt256)
		minInt256  = new(big.Int).Neg(new(big.Int).Add(MaxInt256, common.Big1))
	)
	tests := []struct {
		typ  string
		in   interface{}
		word string // rightmost bytes of the expected word, left padded by pad
		pad  byte
		kind RangeKind
		fail bool
	}{
		{typ: "uint8", in: 255, word: "ff"},
		{typ: "uint8", in: 0, word: "00"},
		{typ: "uint8", in: 256, kind: Overflow, fail: true},
		{typ: "uint8", in: -1, kind: Underflow, fail: true},
		{typ: "int8", in: 127, word: "7f"},
		{typ: "int8", in: -128, word: "80", pad: 0xff},
		{typ: "int8", in: 128, kind: Overflow, fail: true},
		{typ: "int8", in: -129, kind: Underflow, fail: true},
		{typ: "int256", in: -1, word: "ff", pad: 0xff},
		{typ: "uint256", in: maxUint256, word: strings.Repeat("ff", 32)},
		{typ: "uint256", in: new(big.Int).Add(maxUint256, common.Big1), kind: Overflow, fail: true},
		{typ: "int256", in: maxInt256, word: "7f" + strings.Repeat("ff", 31)},
		{typ: "int256", in: new(big.Int).Add(maxInt256, common.Big1), kind: Overflow, fail: true},
		{typ: "int256", in: minInt256, word: "80" + strings.Repeat("00", 31)},
		{typ: "int256", in: new(big.Int).Sub(minInt256, common.Big1), kind: Underflow, fail: true},
		{typ: "uint24", in: 1<<24 - 1, word: "ffffff"},
		{typ: "uint24", in: 1 << 24, kind: Overflow, fail: true},
		{typ: "int24", in: -(1 << 23), word: "800000", pad: 0xff},
	}
	for _, tt := range tests {
		t.Run(tt.typ+"/"+spew.Sprint(tt.in), func(t *testing.T) {
			enc, err := NewEncoderFor(tt.typ)
			require.NoError(t, err)
			err = enc.SetValue(tt.in)
			if tt.fail {
				var rerr *RangeError
				require.True(t, errors.As(err, &rerr), "got %v", err)
				assert.ErrorIs(t, err, ErrRange)
				assert.Equal(t, tt.kind, rerr.Kind)
				assert.Equal(t, tt.typ, rerr.Type)
				return
			}
			require.NoError(t, err)
			data, err := Encode(enc)
			require.NoError(t, err)

			raw := common.FromHex(tt.word)
			want := bytes.Repeat([]byte{tt.pad}, 32-len(raw))
			want = append(want, raw...)
			assert.Equal(t, want, data)

			values, err := Decode(data, true, enc.Type())
			require.NoError(t, err)
			assert.True(t, values[0].Equal(enc.Value()), "decoded %v, want %v", values[0], enc.Value())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	addr := common.HexToAddress("0x00000000000000000000000000000000deadbeef")
	tests := []struct {
		typ string
		in  interface{}
	}{
		{"uint32", uint32(7)},
		{"int16", int16(-300)},
		{"uint64", "0xffffffffffffffff"},
		{"int128", "-170141183460469231731687303715884105728"},
		{"bool", true},
		{"bool", false},
		{"address", addr},
		{"bytes4", [4]byte{1, 2, 3, 4}},
		{"bytes32", common.HexToHash("0x01")},
		{"bytes", []byte{}},
		{"bytes", bytes.Repeat([]byte{0xab}, 33)},
		{"string", ""},
		{"string", "héllo wörld"},
		{"uint8[3]", []int{1, 2, 3}},
		{"int8[2][2]", [][]int8{{-1, 1}, {-128, 127}}},
		{"address[]", []common.Address{addr, {}}},
		{"bytes[]", [][]byte{{1}, {}, bytes.Repeat([]byte{2}, 40)}},
		{"string[]", []string{}},
		{"uint256[2][]", [][2]uint64{{1, 2}, {3, 4}, {5, 6}}},
		{"bool[][]", [][]bool{{true}, {}, {false, true}}},
		{"bytes2[3]", [][]byte{{1, 2}, {3, 4}, {5, 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			enc := mustEncoder(t, tt.typ, tt.in)
			data, err := Encode(enc)
			require.NoError(t, err)
			require.Equal(t, enc.EncodedSize(), len(data))
			require.Zero(t, len(data)%32)

			values, err := Decode(data, true, enc.Type())
			require.NoError(t, err)
			if !values[0].Equal(enc.Value()) {
				t.Fatalf("round trip mismatch\nhave: %s\nwant: %s", spew.Sdump(values[0]), spew.Sdump(enc.Value()))
			}
			// Re-encoding the decoded value is byte identical.
			again := mustEncoder(t, tt.typ, values[0])
			data2, err := Encode(again)
			require.NoError(t, err)
			assert.Equal(t, data, data2)
		})
	}
}

func TestStaticHeadSize(t *testing.T) {
	fixed := mustEncoder(t, "uint8[2][3]", [][]uint8{{1, 2}, {3, 4}, {5, 6}})
	tail := mustEncoder(t, "uint256", 9)
	assert.Equal(t, 192, fixed.HeadSize())
	assert.Equal(t, 192, fixed.EncodedSize())

	data, err := Encode(fixed, tail)
	require.NoError(t, err)
	require.Len(t, data, 224)
	for i := 0; i < 6; i++ {
		assert.Equal(t, byte(i+1), data[32*i+31], "element %d inline", i)
	}
	assert.Equal(t, byte(9), data[223])
}

func TestOffsets(t *testing.T) {
	encs := []Encoder{
		mustEncoder(t, "string", "abc"),
		mustEncoder(t, "uint8[2]", []uint8{7, 8}),
		mustEncoder(t, "bytes", []byte{1, 2, 3, 4}),
		mustEncoder(t, "uint256[]", []int{1}),
	}
	data, err := Encode(encs...)
	require.NoError(t, err)

	headLength := 0
	for _, enc := range encs {
		headLength += enc.HeadSize()
	}
	require.Equal(t, 160, headLength)
	lengths := map[int]uint64{0: 3, 96: 4, 128: 1}
	for slot, wantLen := range lengths {
		off := new(big.Int).SetBytes(data[slot : slot+32]).Uint64()
		assert.Zero(t, off%32, "offset in slot %d", slot)
		assert.GreaterOrEqual(t, off, uint64(headLength))
		got := new(big.Int).SetBytes(data[off : off+32]).Uint64()
		assert.Equal(t, wantLen, got, "length word behind slot %d", slot)
	}
}

func TestBytesPadding(t *testing.T) {
	for _, n := range []int{0, 1, 31, 32, 33, 64, 65} {
		enc := mustEncoder(t, "bytes", bytes.Repeat([]byte{0x11}, n))
		data, err := Encode(enc)
		require.NoError(t, err)
		assert.Len(t, data, 32+32+(n+31)/32*32, "length %d", n)
		assert.True(t, allZero(data[64+n:]), "padding of length %d", n)
	}
}

func TestFixedArrayOfDynamicUnsupported(t *testing.T) {
	for _, typ := range []string{"string[3]", "bytes[2]", "uint256[][2]", "string[2][]", "bytes[1][2]"} {
		_, err := NewEncoderFor(typ)
		assert.ErrorIs(t, err, ErrUnsupportedCategory, typ)
	}
}

func TestBindMismatch(t *testing.T) {
	tests := []struct {
		enc Encoder
		typ string
	}{
		{new(numericEncoder), "string"},
		{new(numericEncoder), "bool"},
		{new(boolEncoder), "uint8"},
		{new(addressEncoder), "bytes20"},
		{new(fixedBytesEncoder), "bytes"},
		{new(bytesEncoder), "string"},
		{&bytesEncoder{text: true}, "bytes"},
		{new(fixedArrayEncoder), "uint8[]"},
		{new(dynamicArrayEncoder), "uint8[2]"},
	}
	for _, tt := range tests {
		err := tt.enc.Bind(MustResolve(tt.typ))
		assert.ErrorIs(t, err, ErrUnsupportedCategory, "%T on %s", tt.enc, tt.typ)
	}
}

func TestEncodeWithoutValue(t *testing.T) {
	for _, typ := range []string{"uint8", "bool", "address", "bytes3", "bytes", "string", "uint8[2]", "uint8[]"} {
		enc, err := NewEncoderFor(typ)
		require.NoError(t, err)
		assert.False(t, enc.Value().IsValid())
		buf := NewEncodeBuffer(make([]byte, 256), enc.HeadSize())
		assert.ErrorIs(t, enc.Encode(buf), ErrValueConversion, typ)
		_, err = enc.EncodePacked(make([]byte, 256))
		assert.ErrorIs(t, err, ErrValueConversion, typ)
	}
}

func TestLengthMismatch(t *testing.T) {
	tests := []struct {
		typ       string
		in        interface{}
		want, got int
	}{
		{"uint8[3]", []int{1, 2}, 3, 2},
		{"uint8[2][2]", [][]int{{1, 2}, {3}}, 2, 1},
		{"bytes4", []byte{1, 2, 3}, 4, 3},
		{"bytes1", "0x0102", 1, 2},
		{"address", make([]byte, 19), 20, 19},
	}
	for _, tt := range tests {
		enc, err := NewEncoderFor(tt.typ)
		require.NoError(t, err)
		err = enc.SetValue(tt.in)
		var rerr *RangeError
		require.True(t, errors.As(err, &rerr), "%s: got %v", tt.typ, err)
		assert.Equal(t, LengthMismatch, rerr.Kind)
		assert.Equal(t, tt.want, rerr.Want, tt.typ)
		assert.Equal(t, tt.got, rerr.Got, tt.typ)
	}
}

func TestSetValueConversions(t *testing.T) {
	sixteen := big.NewInt(16)
	for _, in := range []interface{}{
		16, int8(16), uint64(16), "16", "0x10", json.Number("16"), 16.0,
		sixteen, *sixteen, uint256.NewInt(16), *uint256.NewInt(16), Uint(uint16(16)),
	} {
		enc := mustEncoder(t, "uint16", in)
		assert.Equal(t, "16", enc.Value().String(), "%T", in)
	}
	for _, in := range []interface{}{"", "0x", "abc", "1.5", 1.5, true, []byte{1}, nil, (*big.Int)(nil), StringValue("1")} {
		enc, _ := NewEncoderFor("uint16")
		assert.ErrorIs(t, enc.SetValue(in), ErrValueConversion, "%#v", in)
	}
	neg := mustEncoder(t, "int16", "-0x10")
	assert.Equal(t, "-16", neg.Value().String())

	boolEnc, _ := NewEncoderFor("bool")
	for in, want := range map[interface{}]bool{true: true, "false": false, 1: true, 0: false, "1": true} {
		require.NoError(t, boolEnc.SetValue(in))
		assert.Equal(t, want, boolEnc.Value().Bool(), "%v", in)
	}
	var rerr *RangeError
	require.True(t, errors.As(boolEnc.SetValue(2), &rerr))
	assert.Equal(t, Overflow, rerr.Kind)
	require.True(t, errors.As(boolEnc.SetValue(-1), &rerr))
	assert.Equal(t, Underflow, rerr.Kind)

	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	for _, in := range []interface{}{addr, &addr, [20]byte(addr), addr.Bytes(), addr.Hex(), AddressValue(addr)} {
		enc := mustEncoder(t, "address", in)
		assert.Equal(t, addr, enc.Value().Address(), "%T", in)
	}
	addrEnc, _ := NewEncoderFor("address")
	assert.ErrorIs(t, addrEnc.SetValue("0x1234"), ErrValueConversion)

	str := mustEncoder(t, "string", []byte("raw"))
	assert.Equal(t, "raw", str.Value().Text())
	raw := mustEncoder(t, "bytes", "0xc0ffee")
	assert.Equal(t, []byte{0xc0, 0xff, 0xee}, raw.Value().Bytes())
	bytesEnc, _ := NewEncoderFor("bytes")
	assert.ErrorIs(t, bytesEnc.SetValue("plain text"), ErrValueConversion)

	arrEnc, _ := NewEncoderFor("uint8[]")
	assert.ErrorIs(t, arrEnc.SetValue("123"), ErrValueConversion)
	err := arrEnc.SetValue([]int{1, 300})
	assert.ErrorIs(t, err, ErrRange)
	assert.Contains(t, err.Error(), "element 1")
}

func TestStrictDecoding(t *testing.T) {
	word := func(s string) []byte { return hexWords(s) }
	tests := []struct {
		name    string
		typ     string
		data    []byte
		lenient Value // result of lenient decoding
	}{
		{
			name:    "uint8 high bytes",
			typ:     "uint8",
			data:    word("00000000000000000000000000000000000000000000000000000000000001ff"),
			lenient: Uint(uint8(255)),
		},
		{
			name:    "int8 missing sign extension",
			typ:     "int8",
			data:    word("0000000000000000000000000000000000000000000000000000000000000080"),
			lenient: Int(int8(-128)),
		},
		{
			name:    "int8 bogus sign extension",
			typ:     "int8",
			data:    word("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff01"),
			lenient: Int(int8(1)),
		},
		{
			name:    "address high bytes",
			typ:     "address",
			data:    word("01000000000000000000000000000000000000000000000000000000deadbeef"),
			lenient: AddressValue(common.HexToAddress("0xdeadbeef")),
		},
		{
			name:    "bytes2 padding",
			typ:     "bytes2",
			data:    word("abcd000000000000000000000000000000000000000000000000000000000001"),
			lenient: BytesValue([]byte{0xab, 0xcd}),
		},
		{
			name: "bytes padding",
			typ:  "bytes",
			data: word(`
				0000000000000000000000000000000000000000000000000000000000000020
				0000000000000000000000000000000000000000000000000000000000000001
				aa000000000000000000000000000000000000000000000000000000000000ff`),
			lenient: BytesValue([]byte{0xaa}),
		},
		{
			name: "bytes missing padding",
			typ:  "bytes",
			data: append(word(`
				0000000000000000000000000000000000000000000000000000000000000020
				0000000000000000000000000000000000000000000000000000000000000001`), 0xaa),
			lenient: BytesValue([]byte{0xaa}),
		},
		{
			name: "string invalid utf8",
			typ:  "string",
			data: word(`
				0000000000000000000000000000000000000000000000000000000000000020
				0000000000000000000000000000000000000000000000000000000000000002
				c328000000000000000000000000000000000000000000000000000000000000`),
			lenient: StringValue("\xc3("),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := MustResolve(tt.typ)
			values, err := Decode(tt.data, false, typ)
			require.NoError(t, err)
			assert.True(t, tt.lenient.Equal(values[0]), "lenient decode gave %v", values[0])

			_, err = Decode(tt.data, true, typ)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestDecodeBadBool(t *testing.T) {
	for _, w := range []string{
		"0000000000000000000000000000000000000000000000000000000000000002",
		"0100000000000000000000000000000000000000000000000000000000000001",
	} {
		for _, strict := range []bool{false, true} {
			_, err := Decode(hexWords(w), strict, MustResolve("bool"))
			assert.ErrorIs(t, err, ErrMalformedInput, "%s strict=%v", w, strict)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		data []byte
	}{
		{"short head", "uint256", make([]byte, 31)},
		{"empty", "bool", nil},
		{"offset out of bounds", "bytes", hexWords("0000000000000000000000000000000000000000000000000000000000000040")},
		{"huge offset", "string", hexWords("ff00000000000000000000000000000000000000000000000000000000000000")},
		{"length out of bounds", "bytes", hexWords(`
			0000000000000000000000000000000000000000000000000000000000000020
			0000000000000000000000000000000000000000000000000000000000000021
			0000000000000000000000000000000000000000000000000000000000000000`)},
		{"huge element count", "uint256[]", hexWords(`
			0000000000000000000000000000000000000000000000000000000000000020
			00000000000000000000000000000000000000000000000000000000ffffffff`)},
		{"count beyond data", "uint256[]", hexWords(`
			0000000000000000000000000000000000000000000000000000000000000020
			0000000000000000000000000000000000000000000000000000000000000002
			0000000000000000000000000000000000000000000000000000000000000001`)},
		{"short fixed array", "uint8[3]", make([]byte, 64)},
		{"oversized fixed array", "uint8[4000000]", make([]byte, 32)},
		{"oversized nested fixed array", "uint256[4096][4096]", make([]byte, 64)},
	}
	for _, tt := range tests {
		_, err := Decode(tt.data, false, MustResolve(tt.typ))
		assert.ErrorIs(t, err, ErrMalformedInput, tt.name)
	}
}

func TestEncodePacked(t *testing.T) {
	// abi.encodePacked(int16(-1), bytes1(0x42), uint16(0x03), string("Hello, world!"))
	packed, err := EncodePacked(
		mustEncoder(t, "int16", -1),
		mustEncoder(t, "bytes1", []byte{0x42}),
		mustEncoder(t, "uint16", 3),
		mustEncoder(t, "string", "Hello, world!"),
	)
	require.NoError(t, err)
	assert.Equal(t, common.FromHex("0xffff42000348656c6c6f2c20776f726c6421"), packed)

	addr := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	packed, err = EncodePacked(
		mustEncoder(t, "bool", true),
		mustEncoder(t, "address", addr),
		mustEncoder(t, "uint16[]", []int{1, 2}),
	)
	require.NoError(t, err)
	want := append([]byte{1}, addr.Bytes()...)
	want = append(want, hexWords(`
		0000000000000000000000000000000000000000000000000000000000000001
		0000000000000000000000000000000000000000000000000000000000000002`)...)
	assert.Equal(t, want, packed)

	for _, tt := range []struct {
		typ string
		in  interface{}
	}{
		{"uint8[2][]", [][]int{{1, 2}}},
		{"string[]", []string{"a"}},
		{"bytes[]", [][]byte{{1}}},
	} {
		_, err := EncodePacked(mustEncoder(t, tt.typ, tt.in))
		assert.ErrorIs(t, err, ErrUnsupportedCategory, tt.typ)
	}
}

func TestEncodeBufferOverrun(t *testing.T) {
	enc := mustEncoder(t, "string", "abc")
	buf := NewEncodeBuffer(make([]byte, 64), 32)
	assert.Error(t, enc.Encode(buf))

	fixed := mustEncoder(t, "uint8[2]", []int{1, 2})
	buf = NewEncodeBuffer(make([]byte, 32), 32)
	assert.Error(t, fixed.Encode(buf))

	buf = NewEncodeBuffer(make([]byte, 96), 64)
	require.NoError(t, mustEncoder(t, "bool", true).Encode(buf))
	assert.Error(t, buf.Finish(), "unwritten bytes must be reported")
}
