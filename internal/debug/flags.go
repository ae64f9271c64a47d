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

package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sunyihoo/evmkit/internal/flags"
	"github.com/sunyihoo/evmkit/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		// 日志详细级别：0=静默，1=错误，2=警告，3=信息，4=调试，5=详细。
		Value:    3,
		Category: flags.LoggingCategory,
	}
	logFormatFlag = &cli.StringFlag{
		Name:     "log.format",
		Usage:    "Log format to use (json|logfmt|terminal)",
		Category: flags.LoggingCategory,
	}
	logFileFlag = &cli.StringFlag{
		Name:     "log.file",
		Usage:    "Write logs to a file",
		Category: flags.LoggingCategory,
	}
	logRotateFlag = &cli.BoolFlag{
		Name:     "log.rotate",
		Usage:    "Enables log file rotation",
		Category: flags.LoggingCategory,
	}
	logMaxSizeMBsFlag = &cli.IntFlag{
		Name:     "log.maxsize",
		Usage:    "Maximum size in MBs of a single log file",
		Value:    100,
		Category: flags.LoggingCategory,
	}
	logMaxBackupsFlag = &cli.IntFlag{
		Name:     "log.maxbackups",
		Usage:    "Maximum number of log files to retain",
		Value:    10,
		Category: flags.LoggingCategory,
	}
	logMaxAgeFlag = &cli.IntFlag{
		Name:     "log.maxage",
		Usage:    "Maximum number of days to retain a log file",
		Value:    30,
		Category: flags.LoggingCategory,
	}
	logCompressFlag = &cli.BoolFlag{
		Name:     "log.compress",
		Usage:    "Compress the log files",
		Value:    false,
		Category: flags.LoggingCategory,
	}
	memprofilerateFlag = &cli.IntFlag{
		Name:     "pprof.memprofilerate",
		Usage:    "Turn on memory profiling with the given rate",
		Value:    runtime.MemProfileRate,
		Category: flags.LoggingCategory,
	}
	memprofileFlag = &cli.StringFlag{
		Name:     "pprof.memprofile",
		Usage:    "Write an allocation profile to the given file on exit",
		Category: flags.LoggingCategory,
	}
	blockprofilerateFlag = &cli.IntFlag{
		Name:     "pprof.blockprofilerate",
		Usage:    "Turn on block profiling with the given rate",
		Category: flags.LoggingCategory,
	}
	cpuprofileFlag = &cli.StringFlag{
		Name:     "pprof.cpuprofile",
		Usage:    "Write CPU profile to the given file",
		Category: flags.LoggingCategory,
	}
	traceFlag = &cli.StringFlag{
		Name:     "go-execution-trace",
		Usage:    "Write Go execution trace to the given file",
		Category: flags.LoggingCategory,
	}
)

// Flags holds all command-line flags required for debugging.
// Flags 包含所有用于调试的命令行标志。
var Flags = []cli.Flag{
	verbosityFlag,
	logFormatFlag,
	logFileFlag,
	logRotateFlag,
	logMaxSizeMBsFlag,
	logMaxBackupsFlag,
	logMaxAgeFlag,
	logCompressFlag,
	memprofilerateFlag,
	memprofileFlag,
	blockprofilerateFlag,
	cpuprofileFlag,
	traceFlag,
}

var (
	logOutputFile io.WriteCloser
	memProfile    string
)

// Setup initializes profiling and logging based on the CLI flags.
// It should be called as early as possible in the program.
// Setup 根据 CLI 标志初始化性能分析和日志记录。应尽可能早地在程序中调用。
func Setup(ctx *cli.Context) error {
	format := ctx.String(logFormatFlag.Name)
	if format == "" {
		format = "terminal"
	}
	output, location, err := openLogOutput(ctx)
	if err != nil {
		return err
	}
	handler, err := newLogHandler(format, output, log.FromLegacyLevel(ctx.Int(verbosityFlag.Name)))
	if err != nil {
		return err
	}
	log.SetDefault(log.NewLogger(handler))

	if err := setupProfiling(ctx); err != nil {
		return err
	}
	if location != "" {
		log.Info("Logging configured", "format", format, "rotate", ctx.Bool(logRotateFlag.Name), "location", location)
	}
	return nil
}

// openLogOutput returns the log file writer selected by the flags, or nil
// when logging goes to the terminal only. The location is empty in that case.
func openLogOutput(ctx *cli.Context) (io.WriteCloser, string, error) {
	logFile := flags.ExpandPath(ctx.String(logFileFlag.Name))
	if logFile != "" {
		if err := validateLogLocation(filepath.Dir(logFile)); err != nil {
			return nil, "", fmt.Errorf("failed to initialize file logger: %v", err)
		}
	}
	switch {
	case ctx.Bool(logRotateFlag.Name):
		location := logFile
		if location == "" {
			// Lumberjack uses <processname>-lumberjack.log in os.TempDir() if empty.
			location = filepath.Join(os.TempDir(), "abicodec-lumberjack.log")
		}
		logOutputFile = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    ctx.Int(logMaxSizeMBsFlag.Name),
			MaxBackups: ctx.Int(logMaxBackupsFlag.Name),
			MaxAge:     ctx.Int(logMaxAgeFlag.Name),
			Compress:   ctx.Bool(logCompressFlag.Name),
		}
		return logOutputFile, location, nil
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, "", err
		}
		logOutputFile = f
		return f, logFile, nil
	}
	return nil, "", nil
}

// newLogHandler builds the handler for the given format writing to stderr
// and, if non-nil, to file. Only the terminal format is colored, and only
// when stderr is a terminal.
func newLogHandler(format string, file io.Writer, level slog.Level) (slog.Handler, error) {
	var (
		stderr   = io.Writer(os.Stderr)
		useColor bool
	)
	if format == "terminal" {
		fd := os.Stderr.Fd()
		useColor = (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("TERM") != "dumb"
		if useColor {
			stderr = colorable.NewColorableStderr()
		}
	}
	output := stderr
	if file != nil {
		output = io.MultiWriter(file, stderr)
	}
	switch format {
	case "json":
		return log.JSONHandlerWithLevel(output, level), nil
	case "logfmt":
		return log.LogfmtHandlerWithLevel(output, level), nil
	case "terminal":
		return log.NewTerminalHandlerWithLevel(output, level, useColor), nil
	}
	return nil, fmt.Errorf("unknown log format: %v", format)
}

// setupProfiling applies the pprof flags and starts the requested CPU
// profile and execution trace.
func setupProfiling(ctx *cli.Context) error {
	runtime.MemProfileRate = memprofilerateFlag.Value
	if ctx.IsSet(memprofilerateFlag.Name) {
		runtime.MemProfileRate = ctx.Int(memprofilerateFlag.Name)
	}
	Handler.SetBlockProfileRate(ctx.Int(blockprofilerateFlag.Name))
	memProfile = ctx.String(memprofileFlag.Name)

	if traceFile := ctx.String(traceFlag.Name); traceFile != "" {
		if err := Handler.StartGoTrace(traceFile); err != nil {
			return err
		}
	}
	if cpuFile := ctx.String(cpuprofileFlag.Name); cpuFile != "" {
		if err := Handler.StartCPUProfile(cpuFile); err != nil {
			return err
		}
	}
	return nil
}

// Exit stops all running profiles, flushing their output to the respective file.
// Exit 停止所有正在运行的性能分析，并将其输出刷新到各自的文件。
func Exit() {
	Handler.StopCPUProfile()
	Handler.StopGoTrace()
	if memProfile != "" {
		if err := Handler.WriteMemProfile(memProfile); err != nil {
			log.Error("Failed to write memory profile", "err", err)
		}
		memProfile = ""
	}
	if logOutputFile != nil {
		logOutputFile.Close()
		logOutputFile = nil
	}
}

// validateLogLocation checks if the log directory is valid and writable.
// validateLogLocation 检查日志目录是否有效且可写。
func validateLogLocation(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("error creating the directory: %w", err)
	}
	// Check if the path is writable by trying to create a temporary file
	tmp := filepath.Join(path, "tmp")
	if f, err := os.Create(tmp); err != nil {
		return err
	} else {
		f.Close()
	}
	return os.Remove(tmp)
}
