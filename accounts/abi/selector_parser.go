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

import (
	"errors"
	"fmt"
	"strings"
)

// SelectorMarshaling is a struct that represents the JSON-serializable form of a method selector.
// It includes the method name, type, and input arguments.
// SelectorMarshaling 是一个结构体，表示方法选择器的可 JSON 序列化形式。
// 它包括方法名称、类型和输入参数。
type SelectorMarshaling struct {
	Name   string               `json:"name"`   // 方法名称
	Type   string               `json:"type"`   // 方法类型（如 "function"）
	Inputs []ArgumentMarshaling `json:"inputs"` // 输入参数列表
}

// Types returns the canonical input type strings in order.
func (s SelectorMarshaling) Types() []string {
	types := make([]string, len(s.Inputs))
	for i, in := range s.Inputs {
		types[i] = in.Type
	}
	return types
}

// Signature returns the canonical "name(t1,t2)" form of the selector.
func (s SelectorMarshaling) Signature() string {
	return Signature(s.Name, s.Types()...)
}

// isDigit checks if the given byte is a digit (0-9).
// isDigit 检查给定字节是否为数字字符（0-9）。
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha checks if the given byte is an alphabet character (a-z or A-Z).
// isAlpha 检查给定字节是否为字母字符（a-z 或 A-Z）。
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentifierSymbol checks if the given byte is a valid identifier symbol ($ or _).
func isIdentifierSymbol(c byte) bool {
	return c == '$' || c == '_'
}

// parseToken parses a token from the unescapedSelector string based on whether it's an identifier.
// parseToken 从 unescapedSelector 字符串中解析一个标记，基于它是否是标识符。
func parseToken(unescapedSelector string, isIdent bool) (string, string, error) {
	if len(unescapedSelector) == 0 {
		return "", "", errors.New("empty token")
	}
	firstChar := unescapedSelector[0]
	position := 1
	if !(isAlpha(firstChar) || (isIdent && isIdentifierSymbol(firstChar))) {
		return "", "", fmt.Errorf("invalid token start: %c", firstChar)
	}
	for position < len(unescapedSelector) {
		char := unescapedSelector[position]
		if !(isAlpha(char) || isDigit(char) || (isIdent && isIdentifierSymbol(char))) {
			break
		}
		position++
	}
	return unescapedSelector[:position], unescapedSelector[position:], nil
}

// parseIdentifier parses an identifier from the unescapedSelector string.
func parseIdentifier(unescapedSelector string) (string, string, error) {
	return parseToken(unescapedSelector, true)
}

// parseElementaryType parses an elementary type with optional array suffixes
// (e.g., uint256, address[2][]) from the unescapedSelector string. Tuples
// are not part of the supported type system and are rejected.
// parseElementaryType 从 unescapedSelector 字符串中解析一个基本类型（可带数组后缀）。
func parseElementaryType(unescapedSelector string) (string, string, error) {
	if len(unescapedSelector) > 0 && unescapedSelector[0] == '(' {
		return "", "", fmt.Errorf("%w: tuple types are not supported", ErrTypeResolution)
	}
	parsedType, rest, err := parseToken(unescapedSelector, false)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse elementary type: %v", err)
	}
	// handle arrays 处理数组类型
	var sb strings.Builder
	sb.WriteString(parsedType)
	for len(rest) > 0 && rest[0] == '[' {
		sb.WriteByte('[')
		rest = rest[1:]
		for len(rest) > 0 && isDigit(rest[0]) {
			sb.WriteByte(rest[0])
			rest = rest[1:]
		}
		if len(rest) == 0 || rest[0] != ']' {
			return "", "", fmt.Errorf("failed to parse array: expected ']' in %q", unescapedSelector)
		}
		sb.WriteByte(']')
		rest = rest[1:]
	}
	return sb.String(), rest, nil
}

// parseArgumentList parses "(t1,t2,...)" and returns the types and the
// remaining input.
func parseArgumentList(unescapedSelector string) ([]string, string, error) {
	if len(unescapedSelector) == 0 || unescapedSelector[0] != '(' {
		return nil, "", errors.New("expected '('")
	}
	rest := unescapedSelector[1:]
	if len(rest) > 0 && rest[0] == ')' {
		return nil, rest[1:], nil
	}
	var types []string
	for {
		parsedType, r, err := parseElementaryType(rest)
		if err != nil {
			return nil, "", err
		}
		types = append(types, parsedType)
		if len(r) == 0 {
			return nil, "", errors.New("expected ')'")
		}
		switch r[0] {
		case ',':
			rest = r[1:]
		case ')':
			return types, r[1:], nil
		default:
			return nil, "", fmt.Errorf("unexpected %q", r)
		}
	}
}

// ParseSelector converts a method selector into a struct that can be JSON encoded
// and consumed by other functions in this package. Every argument type must
// resolve in the default registry.
// Note, although uppercase letters are not part of the ABI spec, this function
// still accepts them in the method name.
// ParseSelector 将方法选择器转换为可以 JSON 编码的结构体，参数类型必须可被解析。
func ParseSelector(unescapedSelector string) (SelectorMarshaling, error) {
	name, rest, err := parseIdentifier(unescapedSelector)
	if err != nil {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': %w", unescapedSelector, err)
	}
	types, rest, err := parseArgumentList(rest)
	if err != nil {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': %w", unescapedSelector, err)
	}
	if len(rest) > 0 {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': unexpected string '%s'", unescapedSelector, rest)
	}
	inputs := make([]ArgumentMarshaling, len(types))
	for i, typ := range types {
		if _, err := Resolve(typ); err != nil {
			return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': %w", unescapedSelector, err)
		}
		// generate dummy name to avoid unmarshal issues 生成虚拟名称以避免反序列化问题
		inputs[i] = ArgumentMarshaling{Name: fmt.Sprintf("name%d", i), Type: typ, InternalType: typ}
	}
	return SelectorMarshaling{Name: name, Type: "function", Inputs: inputs}, nil
}
