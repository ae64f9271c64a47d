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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpConfig(t *testing.T) {
	out, err := runApp(t, "dumpconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[Codec]")
	assert.Contains(t, out, "StrictPadding = false")

	out, err = runApp(t, "dumpconfig", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "StrictPadding = true")
}

func TestDumpConfigRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dump.toml")
	_, err := runApp(t, "dumpconfig", "--strict", file)
	require.NoError(t, err)

	cfg := defaultConfig()
	require.NoError(t, loadConfig(file, &cfg))
	assert.True(t, cfg.Codec.StrictPadding)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Codec]\nBogus = 1\n"), 0644))

	cfg := defaultConfig()
	err := loadConfig(file, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), file)
	assert.Contains(t, err.Error(), "field 'Bogus' is not defined")

	err = loadConfig(filepath.Join(dir, "missing.toml"), &cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = runApp(t, "--config", file, "dumpconfig")
	assert.Error(t, err)
}
