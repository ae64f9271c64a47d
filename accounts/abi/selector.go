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
	"fmt"
	"strings"

	"github.com/sunyihoo/evmkit/crypto"
)

// Signature builds the canonical signature "name(t1,t2,...)" used to derive
// selectors, event IDs and error IDs. The types are not validated.
// Signature 构造规范签名 "name(t1,t2,...)"。
func Signature(name string, types ...string) string {
	return name + "(" + strings.Join(types, ",") + ")"
}

// Selector returns the first four bytes of the Keccak-256 hash of sig.
// Selector 返回签名 Keccak-256 哈希的前 4 个字节。
func Selector(sig string) [4]byte {
	var id [4]byte
	copy(id[:], crypto.Keccak256([]byte(sig)))
	return id
}

// MethodID validates every type through the default registry and returns
// the selector of the resulting signature.
func MethodID(name string, types ...string) ([4]byte, error) {
	for _, typ := range types {
		if _, err := Resolve(typ); err != nil {
			return [4]byte{}, fmt.Errorf("%s: %w", Signature(name, types...), err)
		}
	}
	return Selector(Signature(name, types...)), nil
}
