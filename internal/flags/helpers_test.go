// Copyright 2020 The go-ethereum Authors
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

package flags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestPathExpansion(t *testing.T) {
	home := HomeDir()
	t.Setenv("EVMKIT_TEST_DIR", "/var/lib")
	tests := map[string]string{
		"":                         "",
		"/home/someuser/tmp":       "/home/someuser/tmp",
		"~/tmp":                    filepath.Join(home, "tmp"),
		"~thisOtherUser/b/":        "~thisOtherUser/b",
		"$EVMKIT_TEST_DIR/abi":     "/var/lib/abi",
		"/a/b/../c":                "/a/c",
		"${EVMKIT_TEST_DIR}/./cfg": "/var/lib/cfg",
	}
	for input, want := range tests {
		if got := ExpandPath(input); got != want {
			t.Errorf("ExpandPath(%q) = %q, want %q", input, got, want)
		}
	}
	if os.Getenv("HOME") != "" && home != os.Getenv("HOME") {
		t.Errorf("HomeDir = %q, want $HOME", home)
	}
}

func TestMerge(t *testing.T) {
	a := []cli.Flag{&cli.BoolFlag{Name: "a"}}
	b := []cli.Flag{&cli.BoolFlag{Name: "b"}, &cli.BoolFlag{Name: "c"}}
	merged := Merge(a, nil, b)
	if len(merged) != 3 {
		t.Fatalf("merged %d flags, want 3", len(merged))
	}
	if merged[2].Names()[0] != "c" {
		t.Errorf("wrong order: %v", merged[2].Names())
	}
}

func TestNewApp(t *testing.T) {
	app := NewApp("test tool")
	if app.Usage != "test tool" || app.Version == "" {
		t.Fatalf("unexpected app defaults: usage %q version %q", app.Usage, app.Version)
	}
}
