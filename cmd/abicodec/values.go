// Copyright 2024 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/sunyihoo/evmkit/accounts/abi"
)

// parseArg turns a command line argument into a value accepted by
// Encoder.SetValue. Scalars are passed through as text; arrays are read as
// JSON arrays whose elements are parsed recursively against the inner type.
func parseArg(t *abi.Type, text string) (interface{}, error) {
	if !t.IsArray() {
		return text, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal([]byte(text), &raws); err != nil {
		return nil, fmt.Errorf("%s: expected a JSON array: %v", t, err)
	}
	elems := make([]interface{}, len(raws))
	for i, raw := range raws {
		elem := string(raw)
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			elem = s
		}
		v, err := parseArg(t.Inner(), elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = v
	}
	return elems, nil
}
