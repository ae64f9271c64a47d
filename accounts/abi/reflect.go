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
	"encoding/json"
	"math"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/evmkit/common"
	"github.com/sunyihoo/evmkit/common/hexutil"
)

// The helpers in this file convert the loosely typed values handed to
// Encoder.SetValue into the single representation each encoder stores.
// Every helper accepts a Value of the matching kind, the natural Go types for
// the ABI type and, through reflection, named types built on them.
// 本文件中的辅助函数把传给 Encoder.SetValue 的松散类型值转换为各编码器内部的统一表示。

var (
	bigT     = reflect.TypeOf(big.Int{})
	bigPtrT  = reflect.TypeOf((*big.Int)(nil))
	u256T    = reflect.TypeOf(uint256.Int{})
	u256PtrT = reflect.TypeOf((*uint256.Int)(nil))
)

// indirect recursively dereferences the value until it either gets the value
// or finds a big.Int or uint256.Int
// indirect 递归解引用值，直到获取到值或找到 big.Int
func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		if elem := v.Elem().Type(); elem == bigT || elem == u256T {
			break
		}
		v = v.Elem()
	}
	return v
}

// mustArrayToByteSlice creates a new byte slice with the exact same size as value
// and copies the bytes in value to the new slice.
func mustArrayToByteSlice(value reflect.Value) reflect.Value {
	slice := reflect.MakeSlice(reflect.TypeOf([]byte{}), value.Len(), value.Len())
	reflect.Copy(slice, value)
	return slice
}

// isByteSequence reports whether v is a byte slice or byte array.
func isByteSequence(v reflect.Value) bool {
	return (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) && v.Type().Elem().Kind() == reflect.Uint8
}

// toBigInt converts in to an integer without range checking.
func toBigInt(t *Type, in interface{}) (*big.Int, error) {
	switch v := in.(type) {
	case Value:
		if v.kind != IntKind {
			return nil, typeErr(t, v.kind)
		}
		return v.Big(), nil
	case *big.Int:
		if v == nil {
			return nil, typeErr(t, "nil *big.Int")
		}
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case *uint256.Int:
		if v == nil {
			return nil, typeErr(t, "nil *uint256.Int")
		}
		return v.ToBig(), nil
	case uint256.Int:
		return v.ToBig(), nil
	case json.Number:
		return parseBigString(t, string(v))
	}
	rv := indirect(reflect.ValueOf(in))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
			return nil, typeErr(t, f)
		}
		n, _ := big.NewFloat(f).Int(nil)
		return n, nil
	case reflect.String:
		return parseBigString(t, rv.String())
	case reflect.Ptr:
		switch rv.Type() {
		case bigPtrT:
			return new(big.Int).Set(rv.Interface().(*big.Int)), nil
		case u256PtrT:
			return rv.Interface().(*uint256.Int).ToBig(), nil
		}
	}
	return nil, typeErr(t, reflect.TypeOf(in))
}

// parseBigString accepts decimal or 0x-prefixed hexadecimal text with an
// optional leading minus sign. Values of any magnitude are returned so that
// the caller can report them as range errors.
func parseBigString(t *Type, s string) (*big.Int, error) {
	text := s
	neg := len(text) > 0 && text[0] == '-'
	if neg {
		text = text[1:]
	}
	base := 10
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		text, base = text[2:], 16
	}
	if text == "" || text[0] == '+' || text[0] == '-' {
		return nil, typeErr(t, "string "+s)
	}
	n, ok := new(big.Int).SetString(text, base)
	if !ok {
		return nil, typeErr(t, "string "+s)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

// toBool converts in to a boolean. Integers 0 and 1 are accepted; any other
// integer is a range error.
func toBool(t *Type, in interface{}) (bool, error) {
	switch v := in.(type) {
	case Value:
		switch v.kind {
		case BoolKind:
			return v.flag, nil
		case IntKind:
			return bitToBool(t, v.num)
		}
		return false, typeErr(t, v.kind)
	case bool:
		return v, nil
	case string:
		switch v {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	if rv := indirect(reflect.ValueOf(in)); rv.Kind() == reflect.Bool {
		return rv.Bool(), nil
	}
	n, err := toBigInt(t, in)
	if err != nil {
		return false, err
	}
	return bitToBool(t, n)
}

func bitToBool(t *Type, n *big.Int) (bool, error) {
	switch {
	case n.Sign() < 0:
		return false, &RangeError{Type: t.Name, Kind: Underflow, Value: n.String()}
	case n.Cmp(common.Big1) > 0:
		return false, &RangeError{Type: t.Name, Kind: Overflow, Value: n.String()}
	}
	return n.Sign() == 1, nil
}

// toAddress converts in to an address. Byte input must be exactly 20 bytes
// long and text must be a 40 digit hex string.
func toAddress(t *Type, in interface{}) (common.Address, error) {
	switch v := in.(type) {
	case Value:
		switch v.kind {
		case AddressKind:
			return v.addr, nil
		case BytesKind:
			return bytesToAddress(t, v.raw)
		}
		return common.Address{}, typeErr(t, v.kind)
	case common.Address:
		return v, nil
	case *common.Address:
		if v != nil {
			return *v, nil
		}
	case string:
		if common.IsHexAddress(v) {
			return common.HexToAddress(v), nil
		}
		return common.Address{}, typeErr(t, "string "+v)
	}
	if rv := indirect(reflect.ValueOf(in)); rv.IsValid() && isByteSequence(rv) {
		return bytesToAddress(t, mustArrayToByteSlice(rv).Bytes())
	}
	return common.Address{}, typeErr(t, reflect.TypeOf(in))
}

func bytesToAddress(t *Type, b []byte) (common.Address, error) {
	if len(b) != common.AddressLength {
		return common.Address{}, lengthErr(t, common.AddressLength, len(b))
	}
	return common.BytesToAddress(b), nil
}

// toBytes converts in to a fresh byte slice. Text must be 0x-prefixed hex.
func toBytes(t *Type, in interface{}) ([]byte, error) {
	switch v := in.(type) {
	case Value:
		if v.kind != BytesKind {
			return nil, typeErr(t, v.kind)
		}
		return common.CopyBytes(v.raw), nil
	case []byte:
		return common.CopyBytes(v), nil
	case hexutil.Bytes:
		return common.CopyBytes(v), nil
	case common.Hash:
		return v.Bytes(), nil
	case string:
		raw, err := hexutil.Decode(v)
		if err != nil {
			return nil, typeErr(t, "string "+v+" ("+err.Error()+")")
		}
		return raw, nil
	}
	if rv := indirect(reflect.ValueOf(in)); rv.IsValid() && isByteSequence(rv) {
		return mustArrayToByteSlice(rv).Bytes(), nil
	}
	return nil, typeErr(t, reflect.TypeOf(in))
}

// toText converts in to a string. Byte input is taken verbatim.
func toText(t *Type, in interface{}) (string, error) {
	switch v := in.(type) {
	case Value:
		if v.kind != StringKind {
			return "", typeErr(t, v.kind)
		}
		return v.text, nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	if rv := indirect(reflect.ValueOf(in)); rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", typeErr(t, reflect.TypeOf(in))
}

// toElems splits in into the element values of an array. Text is never
// treated as a sequence.
func toElems(t *Type, in interface{}) ([]interface{}, error) {
	switch v := in.(type) {
	case Value:
		if v.kind != ArrayKind {
			return nil, typeErr(t, v.kind)
		}
		out := make([]interface{}, len(v.elems))
		for i, e := range v.elems {
			out[i] = e
		}
		return out, nil
	case []interface{}:
		return v, nil
	case []Value:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	}
	rv := indirect(reflect.ValueOf(in))
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, typeErr(t, reflect.TypeOf(in))
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}
