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
	"fmt"
	"strings"

	"github.com/sunyihoo/evmkit/common"
	"github.com/sunyihoo/evmkit/crypto"
)

// Event is an event potentially triggered by the EVM's LOG mechanism. The Event
// holds type information (inputs) about the yielded output. Anonymous events
// don't get the signature canonical representation as the first LOG topic.
// Event 是可能由 EVM 的 LOG 机制触发的事件。匿名事件不会将签名作为第一个 LOG 主题。
type Event struct {
	// Name is the event name used for internal representation. It's derived from
	// the raw name and a suffix will be added in the case of event overloading.
	//
	// e.g.
	// These are two events that have the same name:
	// * foo(int8,int8)
	// * foo(uint8,uint8)
	// The event name of the first one will be resolved as foo while the second one
	// will be resolved as foo0.
	Name string

	// RawName is the raw event name parsed from ABI.
	RawName   string
	Anonymous bool
	Inputs    Arguments
	str       string

	// Sig contains the string signature according to the ABI spec.
	// e.g.	 event foo(uint32 a, int256 b) = "foo(uint32,int256)"
	Sig string

	// ID returns the canonical representation of the event's signature used by the
	// abi definition to identify event names and types.
	// ID 是事件签名的 Keccak-256 哈希，用作第一个主题。
	ID common.Hash
}

// describeArguments names unnamed inputs argN and returns the inputs together
// with the human readable and the canonical signature of kind name(inputs).
func describeArguments(kind, name string, inputs Arguments) (Arguments, string, string) {
	names := make([]string, len(inputs))
	types := make([]string, len(inputs))
	for i, input := range inputs {
		if input.Name == "" {
			inputs[i] = Argument{
				Name:    fmt.Sprintf("arg%d", i),
				Indexed: input.Indexed,
				Type:    input.Type,
			}
		}
		names[i] = fmt.Sprintf("%v %v", input.Type, inputs[i].Name)
		if input.Indexed {
			names[i] = fmt.Sprintf("%v indexed %v", input.Type, inputs[i].Name)
		}
		types[i] = input.Type.String()
	}
	str := fmt.Sprintf("%s %v(%v)", kind, name, strings.Join(names, ", "))
	return inputs, str, Signature(name, types...)
}

// NewEvent creates a new Event.
// It sanitizes the input arguments to remove unnamed arguments.
// It also precomputes the id, signature and string representation
// of the event.
// NewEvent 创建一个新的 Event，并预计算 ID、签名和字符串表示。
func NewEvent(name, rawName string, anonymous bool, inputs Arguments) Event {
	inputs, str, sig := describeArguments("event", rawName, inputs)
	return Event{
		Name:      name,
		RawName:   rawName,
		Anonymous: anonymous,
		Inputs:    inputs,
		str:       str,
		Sig:       sig,
		ID:        crypto.Keccak256Hash([]byte(sig)),
	}
}

// String returns the string representation of the event.
func (e Event) String() string {
	return e.str
}

// Unpack decodes a log: indexed inputs from topics and the others from data.
// For non-anonymous events the first topic must be the event ID. The values
// are returned in input order.
// Unpack 解码日志：索引参数来自主题，其余参数来自数据。
func (e Event) Unpack(data []byte, topics []common.Hash) ([]Value, error) {
	if !e.Anonymous {
		if len(topics) == 0 || topics[0] != e.ID {
			return nil, fmt.Errorf("%w: log is not a %s event", ErrMalformedInput, e.RawName)
		}
		topics = topics[1:]
	}
	var indexed Arguments
	for _, arg := range e.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	fromTopics, err := ParseTopics(indexed, topics)
	if err != nil {
		return nil, err
	}
	fromData, err := e.Inputs.UnpackValues(data)
	if err != nil {
		return nil, err
	}
	out := make([]Value, 0, len(e.Inputs))
	for _, arg := range e.Inputs {
		if arg.Indexed {
			out, fromTopics = append(out, fromTopics[0]), fromTopics[1:]
		} else {
			out, fromData = append(out, fromData[0]), fromData[1:]
		}
	}
	return out, nil
}
