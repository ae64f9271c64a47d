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
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		want  string
	}{
		{"baz", []string{"uint32", "bool"}, "cdcd77c0"},
		{"bar", []string{"bytes3[2]"}, "fce353f6"},
		{"sam", []string{"bytes", "bool", "uint256[]"}, "a5643bf2"},
		{"f", []string{"uint256", "uint32[]", "bytes10", "bytes"}, "8be65246"},
		{"g", []string{"uint256[][]", "string[]"}, "2289b18c"},
		{"transfer", []string{"address", "uint256"}, "a9059cbb"},
		{"balanceOf", []string{"address"}, "70a08231"},
		{"Error", []string{"string"}, "08c379a0"},
		{"Panic", []string{"uint256"}, "4e487b71"},
	}
	for _, tt := range tests {
		sig := Signature(tt.name, tt.types...)
		id := Selector(sig)
		assert.Equal(t, tt.want, hex.EncodeToString(id[:]), sig)

		checked, err := MethodID(tt.name, tt.types...)
		require.NoError(t, err, sig)
		assert.Equal(t, id, checked, sig)
	}
}

func TestMethodIDRejectsAliases(t *testing.T) {
	for _, typ := range []string{"uint", "int", "byte", "fixed128x18", "function"} {
		_, err := MethodID("f", typ)
		assert.ErrorIs(t, err, ErrTypeResolution, typ)
	}
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		input string
		name  string
		types []string
	}{
		{"noargs()", "noargs", []string{}},
		{"transfer(address,uint256)", "transfer", []string{"address", "uint256"}},
		{"_$weird9(bool)", "_$weird9", []string{"bool"}},
		{"CamelCase(bytes32[2][],string)", "CamelCase", []string{"bytes32[2][]", "string"}},
		{"g(uint256[][],string[])", "g", []string{"uint256[][]", "string[]"}},
	}
	for _, tt := range tests {
		sel, err := ParseSelector(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.name, sel.Name)
		assert.Equal(t, "function", sel.Type)
		assert.Equal(t, tt.types, sel.Types())
		assert.Equal(t, tt.input, sel.Signature())

		// The result must be consumable as a JSON ABI entry.
		blob, err := json.Marshal([]SelectorMarshaling{sel})
		require.NoError(t, err)
		parsed, err := JSON(bytes.NewReader(blob))
		require.NoError(t, err, string(blob))
		method, ok := parsed.Methods[tt.name]
		require.True(t, ok)
		assert.Equal(t, tt.input, method.Sig)
	}
}

func TestParseSelectorErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"1abc()",
		"foo",
		"foo(",
		"foo(uint256",
		"foo(uint256,)",
		"foo(uint256[)",
		"foo(uint256)x",
		"foo(uint)",
		"foo(uint7)",
		"foo(bytes33)",
	} {
		_, err := ParseSelector(input)
		assert.Error(t, err, input)
	}
	_, err := ParseSelector("foo((uint256,bool))")
	assert.ErrorIs(t, err, ErrTypeResolution)
	_, err = ParseSelector("foo(uint)")
	assert.ErrorIs(t, err, ErrTypeResolution)
}
