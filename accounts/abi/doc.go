// Copyright 2015 The go-ethereum Authors
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

// Package abi implements the Ethereum contract ABI (Application Binary
// Interface) for the type system without tuples: intN, uintN, bool, address,
// bytesN, bytes, string and fixed or dynamic arrays of them.
//
// Canonical type strings are resolved into immutable descriptors by a
// Registry. An Encoder bound to a descriptor converts Go values into the
// head/data wire layout and back:
//
//	enc, _ := abi.NewEncoderFor("uint8[]")
//	_ = enc.SetValue([]uint8{1, 2, 3})
//	data, _ := abi.Encode(enc)
//
// Arguments, Method, Event and Error build on the encoders to pack function
// calls, unpack return data, revert reasons and logs from compiler ABI JSON.
// abi 包实现了以太坊合约 ABI（不含 tuple）的编码与解码。
package abi
