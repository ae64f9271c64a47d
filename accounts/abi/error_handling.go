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
	"errors"
	"fmt"
)

// Error classes returned by the codec. Every error produced while resolving,
// converting, encoding or decoding wraps exactly one of them, so callers can
// test with errors.Is.
// 编解码器返回的错误类别，所有错误都包装其中之一，可用 errors.Is 判断。
var (
	// ErrTypeResolution is returned for unknown or non-canonical type strings.
	ErrTypeResolution = errors.New("abi: cannot resolve type")

	// ErrUnsupportedCategory is returned when an encoder is bound to a type
	// category it does not implement, or when a type has no supported layout.
	ErrUnsupportedCategory = errors.New("abi: unsupported type category")

	// ErrValueConversion is returned when a native value cannot be converted
	// to the bound type.
	ErrValueConversion = errors.New("abi: cannot convert value")

	// ErrRange is the class of *RangeError.
	ErrRange = errors.New("abi: value out of range")

	// ErrMalformedInput is returned for invalid wire data.
	ErrMalformedInput = errors.New("abi: malformed input")
)

var (
	// errBadBool is returned when a boolean value is improperly encoded.
	// errBadBool 在布尔值编码不正确时返回。
	errBadBool = fmt.Errorf("%w: improperly encoded boolean value", ErrMalformedInput)

	errBadPadding = fmt.Errorf("%w: non-zero padding bytes", ErrMalformedInput)
	errBadUTF8    = fmt.Errorf("%w: string is not valid UTF-8", ErrMalformedInput)
	errShortData  = fmt.Errorf("%w: data too short", ErrMalformedInput)
	errBadOffset  = fmt.Errorf("%w: offset out of bounds", ErrMalformedInput)
	errBadLength  = fmt.Errorf("%w: length out of bounds", ErrMalformedInput)

	errNoValue = fmt.Errorf("%w: no value set", ErrValueConversion)
)

// RangeKind tells which bound a RangeError violated.
type RangeKind uint8

const (
	Overflow RangeKind = iota
	Underflow
	LengthMismatch
)

func (k RangeKind) String() string {
	switch k {
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case LengthMismatch:
		return "length mismatch"
	default:
		return fmt.Sprintf("RangeKind(%d)", uint8(k))
	}
}

// RangeError reports a numeric value outside the bound type's range, or an
// element count that does not match a fixed-size type.
// RangeError 表示数值超出类型范围，或定长类型的元素个数不匹配。
type RangeError struct {
	Type  string    // canonical type the value was set on
	Kind  RangeKind // which check failed
	Value string    // offending value, printed in decimal for numbers

	// Want and Got are the expected and actual element counts; only set
	// for LengthMismatch.
	Want, Got int
}

func (e *RangeError) Error() string {
	if e.Kind == LengthMismatch {
		return fmt.Sprintf("abi: %s for %s: want %d elements, got %d", e.Kind, e.Type, e.Want, e.Got)
	}
	return fmt.Sprintf("abi: %s: %s does not fit in %s", e.Kind, e.Value, e.Type)
}

// Unwrap makes errors.Is(err, ErrRange) hold for every RangeError.
func (e *RangeError) Unwrap() error { return ErrRange }

func lengthErr(t *Type, want, got int) error {
	return &RangeError{Type: t.Name, Kind: LengthMismatch, Want: want, Got: got}
}

// typeErr returns a formatted type casting error.
func typeErr(expected, got interface{}) error {
	return fmt.Errorf("%w: cannot use %v as type %v as argument", ErrValueConversion, got, expected)
}

func categoryErr(encoder string, t *Type) error {
	return fmt.Errorf("%w: %s encoder cannot bind %s", ErrUnsupportedCategory, encoder, t)
}
