// Copyright 2016 The go-ethereum Authors
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
	"fmt"

	"github.com/sunyihoo/evmkit/common"
	"github.com/sunyihoo/evmkit/crypto"
)

// Error represents a custom error defined in the ABI.
// Error 表示在 ABI 中定义的自定义错误。
type Error struct {
	Name   string
	Inputs Arguments
	str    string

	// Sig contains the string signature according to the ABI spec.
	// e.g. error foo(uint32 a, int256 b) = "foo(uint32,int256)"
	Sig string

	// ID returns the canonical representation of the error's signature used by the
	// abi definition to identify event names and types.
	ID common.Hash
}

// NewError creates a new Error instance with the given name and inputs.
// It sanitizes the inputs, precomputes the string and signature representations,
// and calculates the unique ID based on the signature.
func NewError(name string, inputs Arguments) Error {
	inputs, str, sig := describeArguments("error", name, inputs)
	return Error{
		Name:   name,
		Inputs: inputs,
		str:    str,
		Sig:    sig,
		ID:     crypto.Keccak256Hash([]byte(sig)),
	}
}

// String returns the string representation of the error.
func (e Error) String() string {
	return e.str
}

// Selector returns the 4-byte identifier revert data starts with.
func (e Error) Selector() [4]byte {
	var id [4]byte
	copy(id[:], e.ID[:4])
	return id
}

// Unpack decodes the provided data into the error's input arguments.
// It first checks if the data matches the error's identifier (first 4 bytes),
// then unpacks the remaining data into the error's inputs.
// Unpack 先校验前 4 字节标识符，再解码其余数据。
func (e *Error) Unpack(data []byte) ([]Value, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: insufficient data for unpacking: have %d, want at least 4", errShortData, len(data))
	}
	if !bytes.Equal(data[:4], e.ID[:4]) {
		return nil, fmt.Errorf("%w: invalid identifier, have %#x want %#x", ErrMalformedInput, data[:4], e.ID[:4])
	}
	return e.Inputs.UnpackValues(data[4:])
}
