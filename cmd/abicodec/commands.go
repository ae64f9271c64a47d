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
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/sunyihoo/evmkit/accounts/abi"
	"github.com/sunyihoo/evmkit/common/hexutil"
	"github.com/sunyihoo/evmkit/internal/flags"
	"github.com/sunyihoo/evmkit/log"
	"github.com/urfave/cli/v2"
)

var (
	sigFlag = &cli.StringFlag{
		Name:     "sig",
		Usage:    `Function signature, e.g. "transfer(address,uint256)"`,
		Category: flags.CodecCategory,
	}
	typesFlag = &cli.StringFlag{
		Name:     "types",
		Usage:    `Comma separated argument types, e.g. "uint256,string"`,
		Category: flags.CodecCategory,
	}
	packedFlag = &cli.BoolFlag{
		Name:     "packed",
		Usage:    "Use the non-standard packed encoding",
		Category: flags.CodecCategory,
	}
	noSelectorFlag = &cli.BoolFlag{
		Name:     "no-selector",
		Usage:    "Omit the 4-byte function selector from the output",
		Category: flags.CodecCategory,
	}
	strictFlag = &cli.BoolFlag{
		Name:     "strict",
		Usage:    "Reject non-zero padding and improperly sign extended words",
		Category: flags.CodecCategory,
	}
)

var (
	encodeCommand = &cli.Command{
		Action:    encode,
		Name:      "encode",
		Usage:     "Encode arguments for a function call",
		ArgsUsage: "<value> ...",
		Flags:     []cli.Flag{sigFlag, packedFlag, noSelectorFlag},
		Description: `
The encode command ABI encodes one value per type in the --sig signature and
prints the result as 0x prefixed hex, prefixed by the function selector.

Integers are given in decimal or 0x hex, booleans as true or false, addresses
and byte strings as 0x hex. Arrays are JSON arrays such as '[1,2]' or
'["a","b"]'. Negative numbers must follow "--" so they are not taken as flags.`,
	}
	decodeCommand = &cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "Decode ABI encoded data",
		ArgsUsage: "<0xhex>",
		Flags:     []cli.Flag{typesFlag, sigFlag, strictFlag},
		Description: `
The decode command decodes hex data against either a list of --types or the
inputs of a --sig signature. With --sig the data must start with the
function selector. Each decoded value is printed on its own line.`,
	}
	selectorCommand = &cli.Command{
		Action:    selector,
		Name:      "selector",
		Usage:     "Compute function selectors",
		ArgsUsage: "<signature> ...",
		Description: `
The selector command prints the 4-byte selector and the canonical signature
of every given function signature.`,
	}
)

// encode is the encode command.
func encode(ctx *cli.Context) error {
	if !ctx.IsSet(sigFlag.Name) {
		return errors.New("missing --sig")
	}
	sel, err := abi.ParseSelector(ctx.String(sigFlag.Name))
	if err != nil {
		return err
	}
	types := sel.Types()
	id, err := abi.MethodID(sel.Name, types...)
	if err != nil {
		return err
	}
	args := ctx.Args().Slice()
	if len(args) != len(types) {
		return fmt.Errorf("%s takes %d arguments, got %d", sel.Signature(), len(types), len(args))
	}
	encs := make([]abi.Encoder, len(types))
	for i, name := range types {
		t, err := abi.Resolve(name)
		if err != nil {
			return err
		}
		v, err := parseArg(t, args[i])
		if err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
		enc, err := abi.NewEncoder(t)
		if err != nil {
			return err
		}
		if err := enc.SetValue(v); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
		encs[i] = enc
	}

	var out []byte
	if ctx.Bool(packedFlag.Name) {
		out, err = abi.EncodePacked(encs...)
	} else {
		out, err = abi.Encode(encs...)
		if err == nil && !ctx.Bool(noSelectorFlag.Name) {
			out = append(id[:], out...)
		}
	}
	if err != nil {
		return err
	}
	log.Debug("Encoded arguments", "sig", sel.Signature(), "packed", ctx.Bool(packedFlag.Name), "size", len(out))
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(out))
	return nil
}

// decode is the decode command.
func decode(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one hex encoded argument")
	}
	data, err := hexutil.Decode(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("invalid input: %v", err)
	}

	var names []string
	switch {
	case ctx.IsSet(sigFlag.Name) && ctx.IsSet(typesFlag.Name):
		return errors.New("--sig and --types are mutually exclusive")
	case ctx.IsSet(sigFlag.Name):
		sel, err := abi.ParseSelector(ctx.String(sigFlag.Name))
		if err != nil {
			return err
		}
		id, err := abi.MethodID(sel.Name, sel.Types()...)
		if err != nil {
			return err
		}
		if len(data) < len(id) || !bytes.Equal(data[:len(id)], id[:]) {
			return fmt.Errorf("%w: data does not start with selector %#x of %s", abi.ErrMalformedInput, id, sel.Signature())
		}
		data, names = data[len(id):], sel.Types()
	case ctx.IsSet(typesFlag.Name):
		names = splitTypes(ctx.String(typesFlag.Name))
	default:
		return errors.New("one of --sig or --types is required")
	}

	args, err := abi.NewArguments(names...)
	if err != nil {
		return err
	}
	values, err := args.UnpackWithConfig(data, cfg.Codec)
	if err != nil {
		return err
	}
	log.Debug("Decoded arguments", "types", strings.Join(names, ","), "strict", cfg.Codec.StrictPadding, "size", len(data))
	for i, v := range values {
		fmt.Fprintf(ctx.App.Writer, "%s: %s\n", args[i].Type, v)
	}
	return nil
}

// selector is the selector command.
func selector(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("expected at least one signature")
	}
	for _, arg := range ctx.Args().Slice() {
		sel, err := abi.ParseSelector(arg)
		if err != nil {
			return err
		}
		id, err := abi.MethodID(sel.Name, sel.Types()...)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "%#x %s\n", id, sel.Signature())
	}
	return nil
}

// splitTypes splits a comma separated type list. An empty list yields no types.
func splitTypes(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	names := strings.Split(list, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}
