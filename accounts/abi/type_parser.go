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
	"strconv"
)

// maxArrayDim bounds a single fixed dimension and the product of all fixed
// dimensions of one type.
const maxArrayDim = 1 << 24

// parseTypeName splits a canonical type string into its base name and the
// list of bracket groups in textual order, e.g. "uint8[2][]" yields
// ("uint8", [2 0]). An empty group yields 0 (a dynamic dimension).
//
// The grammar is
//
//	type  = base { "[" [ digits ] "]" }
//	base  = lower { lower | digit }
//	digits = nonzero { digit }
//
// Anything else, including whitespace, upper case letters, signs and leading
// zeros, is rejected.
// parseTypeName 将规范类型字符串拆分为基础名称与按文本顺序排列的方括号维度列表。
func parseTypeName(name string) (base string, dims []int, err error) {
	i := 0
	for i < len(name) && (isLower(name[i]) || (i > 0 && isDigit(name[i]))) {
		i++
	}
	if i == 0 {
		return "", nil, fmt.Errorf("%w: %q: missing base type", ErrTypeResolution, name)
	}
	base = name[:i]

	elems := 1
	for i < len(name) {
		if name[i] != '[' {
			return "", nil, fmt.Errorf("%w: %q: unexpected %q at position %d", ErrTypeResolution, name, name[i], i)
		}
		i++
		start := i
		for i < len(name) && isDigit(name[i]) {
			i++
		}
		if i == len(name) || name[i] != ']' {
			return "", nil, fmt.Errorf("%w: %q: unterminated array dimension", ErrTypeResolution, name)
		}
		dim, err := parseDim(name[start:i])
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q: %v", ErrTypeResolution, name, err)
		}
		if dim > 0 {
			elems *= dim
			if elems > maxArrayDim {
				return "", nil, fmt.Errorf("%w: %q: array too large", ErrTypeResolution, name)
			}
		}
		dims = append(dims, dim)
		i++ // skip ']'
	}
	return base, dims, nil
}

// parseDim parses the digits between one pair of brackets.
func parseDim(digits string) (int, error) {
	if digits == "" {
		return 0, nil
	}
	if digits[0] == '0' {
		return 0, fmt.Errorf("invalid array dimension %q", digits)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n > maxArrayDim {
		return 0, fmt.Errorf("array dimension %q too large", digits)
	}
	return n, nil
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
