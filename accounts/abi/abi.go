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

package abi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sunyihoo/evmkit/common"
)

// The ABI holds information about a contract's context and available
// invocable methods. It will allow you to type check function calls and
// packs data accordingly.
// ABI 包含有关合约上下文和可调用方法的信息，用于类型检查函数调用并相应地打包数据。
type ABI struct {
	Constructor Method
	Methods     map[string]Method
	Events      map[string]Event
	Errors      map[string]Error

	// Additional "special" functions introduced in solidity v0.6.0.
	// It's separated from the original default fallback. Each contract
	// can only define one fallback and receive function.
	Fallback Method // Note it's also used to represent legacy fallback before v0.6.0
	Receive  Method
}

// JSON returns a parsed ABI interface and error if it failed.
// JSON 返回解析后的 ABI 接口，如果失败则返回错误。
func JSON(reader io.Reader) (ABI, error) {
	dec := json.NewDecoder(reader)

	var abi ABI
	if err := dec.Decode(&abi); err != nil {
		return ABI{}, err
	}
	return abi, nil
}

// Pack encodes a call to the named method: the 4-byte selector followed by
// the encoded arguments. The empty name selects the constructor, whose
// arguments are encoded without a selector.
// Pack 打包方法调用数据：4 字节方法 ID 后接编码后的参数（构造函数无 ID）。
func (abi ABI) Pack(name string, args ...interface{}) ([]byte, error) {
	if name == "" {
		return abi.Constructor.Inputs.Pack(args...)
	}
	method, ok := abi.Methods[name]
	if !ok {
		return nil, fmt.Errorf("method '%s' not found", name)
	}
	enc, err := method.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method.Sig, err)
	}
	out := make([]byte, 0, len(method.ID)+len(enc))
	return append(append(out, method.ID...), enc...), nil
}

// lookup returns the arguments data is decoded against: the outputs of a
// method, or the inputs of an event or error. Names are unique across the
// three kinds, events and errors win over methods.
func (abi ABI) lookup(name string, data []byte) (Arguments, error) {
	if event, ok := abi.Events[name]; ok {
		return event.Inputs, nil
	}
	if e, ok := abi.Errors[name]; ok {
		return e.Inputs, nil
	}
	method, ok := abi.Methods[name]
	if !ok {
		return nil, fmt.Errorf("abi: could not locate named method, event or error: %s", name)
	}
	if len(data)%32 != 0 {
		return nil, fmt.Errorf("%w: improperly formatted output: %d bytes", ErrMalformedInput, len(data))
	}
	return method.Outputs, nil
}

// Unpack decodes the return data of a method, or the data section of an
// event or error, into plain Go values.
// Unpack 将方法返回数据（或事件、错误的数据部分）解码为 Go 值。
func (abi ABI) Unpack(name string, data []byte) ([]interface{}, error) {
	args, err := abi.lookup(name, data)
	if err != nil {
		return nil, err
	}
	return args.Unpack(data)
}

// UnpackValues is like Unpack but returns the decoded Values and honours
// the given decoder configuration.
func (abi ABI) UnpackValues(name string, data []byte, config Config) ([]Value, error) {
	args, err := abi.lookup(name, data)
	if err != nil {
		return nil, err
	}
	return args.UnpackWithConfig(data, config)
}

// UnpackIntoMap decodes like Unpack and stores the values by argument name.
func (abi ABI) UnpackIntoMap(v map[string]interface{}, name string, data []byte) error {
	args, err := abi.lookup(name, data)
	if err != nil {
		return err
	}
	return args.UnpackIntoMap(v, data)
}

// abiField is one entry of a JSON contract description.
type abiField struct {
	Type    string
	Name    string
	Inputs  []Argument
	Outputs []Argument

	// "pure", "view", "nonpayable" or "payable"
	StateMutability string

	// Pre v0.6.0 mutability flags.
	Constant bool
	Payable  bool

	Anonymous bool // events only
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 实现 json.Unmarshaler 接口。
func (abi *ABI) UnmarshalJSON(data []byte) error {
	var fields []abiField
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	abi.Methods = make(map[string]Method)
	abi.Events = make(map[string]Event)
	abi.Errors = make(map[string]Error)
	for _, field := range fields {
		if err := abi.add(field); err != nil {
			return err
		}
	}
	return nil
}

// add registers a single description entry. Overloaded functions and events
// get a numeric suffix, see ResolveNameConflict.
func (abi *ABI) add(f abiField) error {
	switch f.Type {
	case "constructor":
		abi.Constructor = NewMethod("", "", Constructor, f.StateMutability, f.Constant, f.Payable, f.Inputs, nil)
	case "function":
		name := ResolveNameConflict(f.Name, func(s string) bool { _, ok := abi.Methods[s]; return ok })
		abi.Methods[name] = NewMethod(name, f.Name, Function, f.StateMutability, f.Constant, f.Payable, f.Inputs, f.Outputs)
	case "fallback":
		if abi.HasFallback() {
			return errors.New("only single fallback is allowed")
		}
		abi.Fallback = NewMethod("", "", Fallback, f.StateMutability, f.Constant, f.Payable, nil, nil)
	case "receive":
		if abi.HasReceive() {
			return errors.New("only single receive is allowed")
		}
		if f.StateMutability != "payable" {
			return errors.New("the statemutability of receive can only be payable")
		}
		abi.Receive = NewMethod("", "", Receive, f.StateMutability, f.Constant, f.Payable, nil, nil)
	case "event":
		name := ResolveNameConflict(f.Name, func(s string) bool { _, ok := abi.Events[s]; return ok })
		abi.Events[name] = NewEvent(name, f.Name, f.Anonymous, f.Inputs)
	case "error":
		// Errors are inherited but never overloaded.
		abi.Errors[f.Name] = NewError(f.Name, f.Inputs)
	default:
		return fmt.Errorf("abi: could not recognize type %v of field %v", f.Type, f.Name)
	}
	return nil
}

// MethodById looks up a method by the 4-byte id,
// returns nil if none found.
// MethodById 通过 4 字节 ID 查找方法。
func (abi *ABI) MethodById(sigdata []byte) (*Method, error) {
	if len(sigdata) < 4 {
		return nil, fmt.Errorf("data too short (%d bytes) for abi method lookup", len(sigdata))
	}
	for _, method := range abi.Methods {
		if bytes.Equal(method.ID, sigdata[:4]) {
			return &method, nil
		}
	}
	return nil, fmt.Errorf("no method with id: %#x", sigdata[:4])
}

// EventByID looks an event up by its topic hash in the
// ABI and returns nil if none found.
func (abi *ABI) EventByID(topic common.Hash) (*Event, error) {
	for _, event := range abi.Events {
		if event.ID == topic {
			return &event, nil
		}
	}
	return nil, fmt.Errorf("no event with id: %#x", topic.Hex())
}

// ErrorByID looks up an error by the 4-byte id,
// returns nil if none found.
func (abi *ABI) ErrorByID(sigdata [4]byte) (*Error, error) {
	for _, errABI := range abi.Errors {
		if bytes.Equal(errABI.ID[:4], sigdata[:]) {
			return &errABI, nil
		}
	}
	return nil, fmt.Errorf("no error with id: %#x", sigdata[:])
}

// HasFallback returns an indicator whether a fallback function is included.
func (abi *ABI) HasFallback() bool {
	return abi.Fallback.Type == Fallback
}

// HasReceive returns an indicator whether a receive function is included.
func (abi *ABI) HasReceive() bool {
	return abi.Receive.Type == Receive
}

var (
	// revertSelector is a special function selector for revert reason unpacking.
	revertSelector = Selector("Error(string)")

	// panicSelector is a special function selector for panic reason unpacking.
	panicSelector = Selector("Panic(uint256)")
)

// panicReasons map is for readable panic codes
// see this linkage for the details
// https://docs.soliditylang.org/en/v0.8.21/control-structures.html#panic-via-assert-and-error-via-require
// the reason string list is copied from ether.js
// https://github.com/ethers-io/ethers.js/blob/fa3a883ff7c88611ce766f58bdd4b8ac90814470/src.ts/abi/interface.ts#L207-L218
var panicReasons = map[uint64]string{
	0x00: "generic panic",
	0x01: "assert(false)",
	0x11: "arithmetic underflow or overflow",
	0x12: "division or modulo by zero",
	0x21: "enum overflow",
	0x22: "invalid encoded storage byte array accessed",
	0x31: "out-of-bounds array access; popping on an empty array",
	0x32: "out-of-bounds access of an array or bytesN",
	0x41: "out of memory",
	0x51: "uninitialized function",
}

// UnpackRevert resolves the abi-encoded revert reason. According to the solidity
// spec https://solidity.readthedocs.io/en/latest/control-structures.html#revert,
// the provided revert reason is abi-encoded as if it were a call to function
// `Error(string)` or `Panic(uint256)`. So it's a special tool for it.
// UnpackRevert 解析 ABI 编码的 revert 原因（Error(string) 或 Panic(uint256)）。
func UnpackRevert(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("%w: invalid data for unpacking", errShortData)
	}
	switch {
	case bytes.Equal(data[:4], revertSelector[:]):
		unpacked, err := (Arguments{{Type: MustResolve("string")}}).UnpackValues(data[4:])
		if err != nil {
			return "", err
		}
		return unpacked[0].Text(), nil
	case bytes.Equal(data[:4], panicSelector[:]):
		unpacked, err := (Arguments{{Type: MustResolve("uint256")}}).UnpackValues(data[4:])
		if err != nil {
			return "", err
		}
		pCode := unpacked[0].Big()
		// uint64 safety check for future
		// but the code is not bigger than MAX(uint64) now
		if pCode.IsUint64() {
			if reason, ok := panicReasons[pCode.Uint64()]; ok {
				return reason, nil
			}
		}
		return fmt.Sprintf("unknown panic code: %#x", pCode), nil
	default:
		return "", fmt.Errorf("%w: unknown revert selector %#x", ErrMalformedInput, data[:4])
	}
}
