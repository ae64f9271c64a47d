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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestResolveElementary(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		base     ElementaryBase
		size     int
	}{
		{"bool", ElementaryTy, BoolBase, 1},
		{"address", ElementaryTy, AddressBase, 20},
		{"uint8", ElementaryTy, UintBase, 1},
		{"uint256", ElementaryTy, UintBase, 32},
		{"int24", ElementaryTy, IntBase, 3},
		{"int256", ElementaryTy, IntBase, 32},
		{"bytes1", ElementaryTy, FixedBytesBase, 1},
		{"bytes32", ElementaryTy, FixedBytesBase, 32},
		{"bytes", BytesTy, NoneBase, 0},
		{"string", StringTy, NoneBase, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, typ.String())
			assert.Equal(t, tt.category, typ.Category)
			assert.Equal(t, tt.base, typ.Base)
			assert.Equal(t, tt.size, typ.Size)
			assert.Nil(t, typ.Dims)
			assert.Nil(t, typ.Inner())
		})
	}
}

func TestResolveArrays(t *testing.T) {
	typ, err := Resolve("uint8[2][]")
	require.NoError(t, err)
	assert.Equal(t, DynamicArrayTy, typ.Category)
	assert.Equal(t, 0, typ.Length)
	assert.Equal(t, []int{0, 2}, typ.Dims)
	assert.Equal(t, "uint8", typ.Elem.Name)
	assert.True(t, typ.IsDynamic())
	assert.Equal(t, 32, HeadSize(typ))

	inner := typ.Inner()
	assert.Equal(t, "uint8[2]", inner.Name)
	assert.Equal(t, FixedArrayTy, inner.Category)
	assert.Equal(t, []int{2}, inner.Dims)
	assert.Equal(t, "uint8", inner.Inner().Name)
	assert.Same(t, MustResolve("uint8[2]"), inner)

	fixed := MustResolve("uint8[2][3]")
	assert.Equal(t, FixedArrayTy, fixed.Category)
	assert.Equal(t, 3, fixed.Length)
	assert.Equal(t, []int{3, 2}, fixed.Dims)
	assert.False(t, fixed.IsDynamic())
	assert.Equal(t, 32*6, HeadSize(fixed))
	assert.Equal(t, 32*6+32+32, HeadLength(fixed, MustResolve("string"), MustResolve("bool")))
}

func TestResolveRejectsNonCanonical(t *testing.T) {
	for _, name := range []string{
		"", "uint", "int", "byte", "uint7", "uint264", "int0", "bytes0", "bytes33",
		" uint256", "uint256 ", "Uint256", "tuple", "(uint256,bool)", "uint256[",
		"uint256]", "uint256[01]", "uint256[0]", "uint256[-1]", "uint256[+1]",
		"uint256[1 ]", "uint[]", "foo[2]", "uint256[2]x",
		"uint8[16777216][2]", "bool[4096][4096][4096]",
	} {
		_, err := Resolve(name)
		assert.ErrorIs(t, err, ErrTypeResolution, "type %q", name)
	}
}

func TestRegistryCache(t *testing.T) {
	reg := NewRegistry()
	a, err := reg.Resolve("int16[3][]")
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len(), "every intermediate level is cached")

	b, err := reg.Resolve("int16[3]")
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	assert.Same(t, a.Inner(), b)

	c, err := reg.Resolve("int16[3][]")
	require.NoError(t, err)
	assert.Same(t, a, c)

	// Elementary lookups never touch the cache.
	_, err = reg.Resolve("address")
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryConcurrent(t *testing.T) {
	reg := NewRegistry()
	names := []string{"uint8[]", "uint8[2][]", "bytes32[4]", "string[]", "address[3][2][]", "bool[7]"}

	results := make([][]*Type, 16)
	var g errgroup.Group
	for i := range results {
		results[i] = make([]*Type, len(names))
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				for k, name := range names {
					typ, err := reg.Resolve(name)
					if err != nil {
						return err
					}
					if results[i][k] == nil {
						results[i][k] = typ
					} else if results[i][k] != typ {
						return fmt.Errorf("goroutine %d: %s resolved to two descriptors", i, name)
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for i := 1; i < len(results); i++ {
		for k := range names {
			assert.Same(t, results[0][k], results[i][k], names[k])
		}
	}
}

func TestTypeEqual(t *testing.T) {
	assert.True(t, MustResolve("uint8[]").Equal(NewRegistry().mustResolve("uint8[]")))
	assert.False(t, MustResolve("uint8[]").Equal(MustResolve("int8[]")))
	var nilType *Type
	assert.True(t, nilType.Equal(nil))
	assert.False(t, nilType.Equal(MustResolve("bool")))
}

func (r *Registry) mustResolve(name string) *Type {
	t, err := r.Resolve(name)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMustResolvePanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrTypeResolution) {
			t.Fatalf("unexpected panic value %v", r)
		}
	}()
	MustResolve("uint")
}
