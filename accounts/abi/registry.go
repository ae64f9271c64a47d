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
	"sync"

	"github.com/sunyihoo/evmkit/log"
)

// Registry resolves canonical type strings into descriptors. Elementary types
// come from a fixed table; array descriptors are built on first use and cached
// by their full string. The cache only ever grows and entries are immutable, so
// lookups take the read lock and only a miss takes the write lock.
// Registry 将规范类型字符串解析为描述符，数组描述符在首次使用时构建并缓存。
type Registry struct {
	mu     sync.RWMutex
	arrays map[string]*Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{arrays: make(map[string]*Type)}
}

// DefaultRegistry is the process wide registry used by Resolve and by the
// JSON and selector entry points.
var DefaultRegistry = NewRegistry()

// Resolve resolves name through the DefaultRegistry.
func Resolve(name string) (*Type, error) {
	return DefaultRegistry.Resolve(name)
}

// MustResolve is like Resolve but panics on error. It is meant for package
// level variables initialised from constant type strings.
func MustResolve(name string) *Type {
	t, err := DefaultRegistry.Resolve(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the descriptor for a canonical type string. Non-canonical
// spellings such as "uint", "byte" or "uint256 " fail with ErrTypeResolution.
func (r *Registry) Resolve(name string) (*Type, error) {
	if t, ok := elementaryTypes[name]; ok {
		return t, nil
	}
	if !strings.Contains(name, "[") {
		return nil, fmt.Errorf("%w: unknown type %q", ErrTypeResolution, name)
	}
	// Check cache first (read lock)
	r.mu.RLock()
	t, ok := r.arrays[name]
	r.mu.RUnlock()
	if ok {
		return t, nil
	}

	base, dims, err := parseTypeName(name)
	if err != nil {
		return nil, err
	}
	elem, ok := elementaryTypes[base]
	if !ok {
		return nil, fmt.Errorf("%w: unknown base type %q in %q", ErrTypeResolution, base, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buildArray(elem, dims), nil
}

// buildArray wraps elem into dims one bracket group at a time, caching every
// intermediate descriptor (uint8[2] and uint8[2][] for "uint8[2][]").
// The write lock must be held.
func (r *Registry) buildArray(elem *Type, dims []int) *Type {
	t := elem
	for _, dim := range dims {
		name := t.Name + "[" + dimString(dim) + "]"
		if cached, ok := r.arrays[name]; ok {
			t = cached
			continue
		}
		t = newArrayType(t, dim)
		r.arrays[name] = t
		log.Trace("Cached ABI array type", "type", name, "category", t.Category, "dims", t.Dims)
	}
	return t
}

// Len returns the number of cached array descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.arrays)
}
