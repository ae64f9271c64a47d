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
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Argument holds the name of the argument and the corresponding type.
// Types are used when packing and testing arguments.
// Argument 结构体保存参数的名称和对应的类型。这些类型在打包和测试参数时使用。
type Argument struct {
	Name    string
	Type    *Type
	Indexed bool // indexed is only used by events (仅适用于事件)
}

type Arguments []Argument

type ArgumentMarshaling struct {
	Name         string
	Type         string
	InternalType string
	Components   []ArgumentMarshaling `json:",omitempty"`
	Indexed      bool
}

// Config holds the decoder options.
// Config 保存解码器选项。
type Config struct {
	// StrictPadding rejects non-zero padding and improperly sign extended
	// words instead of ignoring them.
	StrictPadding bool
}

// DefaultConfig is the lenient configuration used by Unpack.
var DefaultConfig = Config{}

var errTuple = fmt.Errorf("%w: tuple types are not supported", ErrTypeResolution)

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 方法实现了 json.Unmarshaler 接口。
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}
	if len(arg.Components) > 0 || strings.HasPrefix(arg.Type, "tuple") {
		return fmt.Errorf("argument %q: %w", arg.Name, errTuple)
	}
	typ, err := Resolve(arg.Type)
	if err != nil {
		return fmt.Errorf("argument %q: %w", arg.Name, err)
	}
	argument.Type = typ
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed
	return nil
}

// MarshalJSON writes the argument in the compiler ABI JSON form.
func (argument Argument) MarshalJSON() ([]byte, error) {
	if argument.Type == nil {
		return nil, fmt.Errorf("%w: argument %q has no type", ErrTypeResolution, argument.Name)
	}
	return json.Marshal(ArgumentMarshaling{
		Name:         argument.Name,
		Type:         argument.Type.String(),
		InternalType: argument.Type.String(),
		Indexed:      argument.Indexed,
	})
}

// NewArguments resolves the given canonical type strings into an unnamed
// argument list.
// NewArguments 将规范类型字符串解析为未命名的参数列表。
func NewArguments(types ...string) (Arguments, error) {
	args := make(Arguments, len(types))
	for i, name := range types {
		typ, err := Resolve(name)
		if err != nil {
			return nil, err
		}
		args[i] = Argument{Type: typ}
	}
	return args, nil
}

// Types returns the argument types in order.
func (arguments Arguments) Types() []*Type {
	types := make([]*Type, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type
	}
	return types
}

// TypeNames returns the canonical type strings in order, as used in
// signatures.
func (arguments Arguments) TypeNames() []string {
	names := make([]string, len(arguments))
	for i, arg := range arguments {
		names[i] = arg.Type.String()
	}
	return names
}

// HeadLength returns the size of the head of an encoding of the arguments.
func (arguments Arguments) HeadLength() int {
	return HeadLength(arguments.Types()...)
}

// NonIndexed returns the arguments with indexed arguments filtered out.
// NonIndexed 方法返回过滤掉索引参数后的参数列表。
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// encoders binds one encoder per argument and stores the matching value.
// The first failing argument aborts.
func (arguments Arguments) encoders(args []interface{}) ([]Encoder, error) {
	if len(args) != len(arguments) {
		return nil, fmt.Errorf("%w: argument count mismatch: got %d for %d", ErrValueConversion, len(args), len(arguments))
	}
	encs := make([]Encoder, len(args))
	for i, a := range args {
		enc, err := NewEncoder(arguments[i].Type)
		if err != nil {
			return nil, err
		}
		if err := enc.SetValue(a); err != nil {
			return nil, fmt.Errorf("argument %d %s: %w", i, arguments[i].Name, err)
		}
		encs[i] = enc
	}
	return encs, nil
}

// Pack performs the operation Go format -> Hexdata.
// Pack 方法将 Go 格式的参数打包为 ABI 编码的十六进制数据。
func (arguments Arguments) Pack(args ...interface{}) ([]byte, error) {
	encs, err := arguments.encoders(args)
	if err != nil {
		return nil, err
	}
	return Encode(encs...)
}

// PackValues performs the operation Go format -> Hexdata.
// It is the semantic opposite of UnpackValues.
func (arguments Arguments) PackValues(args []Value) ([]byte, error) {
	in := make([]interface{}, len(args))
	for i, v := range args {
		in[i] = v
	}
	return arguments.Pack(in...)
}

// PackPacked produces the non-standard packed encoding of the arguments, as
// computed by abi.encodePacked in Solidity.
// PackPacked 生成参数的紧凑编码（等同于 Solidity 的 abi.encodePacked）。
func (arguments Arguments) PackPacked(args ...interface{}) ([]byte, error) {
	encs, err := arguments.encoders(args)
	if err != nil {
		return nil, err
	}
	return EncodePacked(encs...)
}

// Unpack performs the operation hexdata -> Go format.
// Unpack 方法将 ABI 编码的十六进制数据解包为 Go 格式。
func (arguments Arguments) Unpack(data []byte) ([]interface{}, error) {
	values, err := arguments.UnpackValues(data)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v.Interface()
	}
	return out, nil
}

// UnpackValues decodes the non-indexed arguments from data with the default
// configuration.
func (arguments Arguments) UnpackValues(data []byte) ([]Value, error) {
	return arguments.UnpackWithConfig(data, DefaultConfig)
}

// UnpackWithConfig decodes the non-indexed arguments from data.
// UnpackWithConfig 按给定配置解码非索引参数。
func (arguments Arguments) UnpackWithConfig(data []byte, config Config) ([]Value, error) {
	nonIndexedArgs := arguments.NonIndexed()
	if len(data) == 0 {
		if len(nonIndexedArgs) != 0 {
			return nil, fmt.Errorf("%w: attempting to unmarshal an empty string while arguments are expected", errShortData)
		}
		return make([]Value, 0), nil
	}
	buf := NewDecodeBuffer(data, config.StrictPadding)
	retval := make([]Value, 0, len(nonIndexedArgs))
	for i, arg := range nonIndexedArgs {
		enc, err := NewEncoder(arg.Type)
		if err != nil {
			return nil, err
		}
		v, err := enc.Decode(buf)
		if err != nil {
			return nil, fmt.Errorf("argument %d %s: %w", i, arg.Name, err)
		}
		retval = append(retval, v)
	}
	return retval, nil
}

// UnpackIntoMap performs the operation hexdata -> mapping of argument name to argument value.
// UnpackIntoMap 方法将 ABI 编码的十六进制数据解包为参数名到参数值的映射。
func (arguments Arguments) UnpackIntoMap(v map[string]interface{}, data []byte) error {
	// Make sure map is not nil 确保目标映射不为空。
	if v == nil {
		return errors.New("abi: cannot unpack into a nil map")
	}
	values, err := arguments.Unpack(data)
	if err != nil {
		return err
	}
	for i, arg := range arguments.NonIndexed() {
		v[arg.Name] = values[i]
	}
	return nil
}
