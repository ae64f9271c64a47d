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

// abicodec encodes and decodes Ethereum contract ABI data from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/sunyihoo/evmkit/internal/debug"
	"github.com/sunyihoo/evmkit/internal/flags"
	"github.com/urfave/cli/v2"
)

const clientIdentifier = "abicodec"

var app = flags.NewApp("the Ethereum contract ABI codec")

func init() {
	app.Name = clientIdentifier
	app.Flags = flags.Merge(
		[]cli.Flag{configFileFlag},
		debug.Flags,
	)
	app.Commands = []*cli.Command{
		encodeCommand,
		decodeCommand,
		selectorCommand,
		dumpConfigCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
