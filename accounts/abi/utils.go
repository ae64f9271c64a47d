// Copyright 2022 The go-ethereum Authors
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

import "fmt"

// ResolveNameConflict returns the next available name for a given thing.
// Solidity supports function and event overloading, which leaves several
// ABI entries with the same raw name; they are told apart by a number
// suffix. E.g. if the abi contains methods "send" and "send0",
// ResolveNameConflict returns "send1" for input "send".
// ResolveNameConflict 为重载的函数或事件返回下一个可用名称（添加数字后缀）。
func ResolveNameConflict(rawName string, used func(string) bool) string {
	name := rawName
	for idx := 0; used(name); idx++ {
		name = fmt.Sprintf("%s%d", rawName, idx)
	}
	return name
}
