// Copyright 2018 The go-ethereum Authors
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

	"github.com/sunyihoo/evmkit/common"
	"github.com/sunyihoo/evmkit/crypto"
)

// MakeTopic converts one indexed event value into its topic word. Value
// types are stored in their standard 32 byte encoding. Strings, bytes and
// arrays are not stored directly; their topic is the Keccak-256 hash of the
// packed encoding, which for arrays is every element padded to 32 bytes.
// MakeTopic 将一个索引事件参数转换为主题：值类型直接编码，字符串、字节和数组取哈希。
func MakeTopic(t *Type, v interface{}) (common.Hash, error) {
	enc, err := NewEncoder(t)
	if err != nil {
		return common.Hash{}, err
	}
	if err := enc.SetValue(v); err != nil {
		return common.Hash{}, err
	}
	if t.IsDynamic() || t.IsArray() {
		packed, err := EncodePacked(enc)
		if err != nil {
			return common.Hash{}, err
		}
		return crypto.Keccak256Hash(packed), nil
	}
	var topic common.Hash
	if err := enc.Encode(NewEncodeBuffer(topic[:], common.HashLength)); err != nil {
		return common.Hash{}, err
	}
	return topic, nil
}

// MakeTopics converts a filter query argument list into a filter topic set.
// query[i] lists the accepted values of the i'th indexed argument of args; an
// empty or nil rule list matches anything.
// MakeTopics 将过滤器查询参数列表转换为过滤器主题集合。
func MakeTopics(args Arguments, query ...[]interface{}) ([][]common.Hash, error) {
	var indexed Arguments
	for _, arg := range args {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if len(query) > len(indexed) {
		return nil, fmt.Errorf("%w: %d topic rules for %d indexed arguments", ErrValueConversion, len(query), len(indexed))
	}
	topics := make([][]common.Hash, len(query))
	for i, filter := range query {
		for _, rule := range filter {
			topic, err := MakeTopic(indexed[i].Type, rule)
			if err != nil {
				return nil, fmt.Errorf("topic %d %s: %w", i, indexed[i].Name, err)
			}
			topics[i] = append(topics[i], topic)
		}
	}
	return topics, nil
}

// ParseTopics converts the indexed topic fields into actual log field values.
//
// Note, dynamic types and arrays cannot be reconstructed since they get
// mapped to Keccak256 hashes as the topic value! They are returned as the
// 32 byte hash.
// ParseTopics 将索引主题字段转换为实际的日志字段值（动态类型与数组返回其哈希）。
func ParseTopics(fields Arguments, topics []common.Hash) ([]Value, error) {
	// Sanity check that the fields and topics match up
	if len(fields) != len(topics) {
		return nil, fmt.Errorf("%w: topic/field count mismatch: %d topics for %d fields", ErrMalformedInput, len(topics), len(fields))
	}
	out := make([]Value, len(fields))
	for i, arg := range fields {
		if !arg.Indexed {
			return nil, errors.New("abi: non-indexed field in topic reconstruction")
		}
		if arg.Type.IsDynamic() || arg.Type.IsArray() {
			out[i] = BytesValue(topics[i].Bytes())
			continue
		}
		enc, err := NewEncoder(arg.Type)
		if err != nil {
			return nil, err
		}
		v, err := enc.Decode(NewDecodeBuffer(topics[i].Bytes(), false))
		if err != nil {
			return nil, fmt.Errorf("topic %d %s: %w", i, arg.Name, err)
		}
		out[i] = v
	}
	return out, nil
}

// ParseTopicsIntoMap converts the indexed topic field-value pairs into map key-value pairs.
func ParseTopicsIntoMap(out map[string]interface{}, fields Arguments, topics []common.Hash) error {
	if out == nil {
		return errors.New("abi: cannot unpack into a nil map")
	}
	values, err := ParseTopics(fields, topics)
	if err != nil {
		return err
	}
	for i, arg := range fields {
		out[arg.Name] = values[i].Interface()
	}
	return nil
}
