// Copyright 2017 The go-ethereum Authors
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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/sunyihoo/evmkit/accounts/abi"
	"github.com/sunyihoo/evmkit/internal/flags"
	"github.com/sunyihoo/evmkit/log"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}

	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile (optional)>",
		Flags:       []cli.Flag{strictFlag},
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type abicodecConfig struct {
	Codec abi.Config
}

func defaultConfig() abicodecConfig {
	return abicodecConfig{Codec: abi.DefaultConfig}
}

func loadConfig(file string, cfg *abicodecConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig loads the configuration from the defaults, the optional
// config file and finally the command line flags, in that order.
func loadBaseConfig(ctx *cli.Context) (abicodecConfig, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(flags.ExpandPath(file), &cfg); err != nil {
			return cfg, err
		}
		log.Debug("Loaded configuration file", "file", file)
	}
	setCodecConfig(ctx, &cfg.Codec)
	return cfg, nil
}

// setCodecConfig applies codec related command line flags to cfg.
func setCodecConfig(ctx *cli.Context, cfg *abi.Config) {
	if ctx.IsSet(strictFlag.Name) {
		cfg.StrictPadding = ctx.Bool(strictFlag.Name)
	}
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}
