package log

import (
	"context"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sync/atomic"
	"time"
)

const errorKey = "LOG_ERROR"

// Legacy verbosity levels, as accepted by --verbosity. 旧版详细级别（0=crit ... 5=trace）。
const (
	legacyLevelCrit = iota
	legacyLevelError
	legacyLevelWarn
	legacyLevelInfo
	legacyLevelDebug
	legacyLevelTrace
)

const (
	levelMaxVerbosity slog.Level = math.MinInt
	LevelTrace        slog.Level = -8
	LevelDebug                   = slog.LevelDebug
	LevelInfo                    = slog.LevelInfo
	LevelWarn                    = slog.LevelWarn
	LevelError                   = slog.LevelError
	LevelCrit         slog.Level = 12
)

// FromLegacyLevel converts a 0..5 verbosity number into a slog level.
// Values above 5 clamp to trace, negative values to crit.
func FromLegacyLevel(lvl int) slog.Level {
	switch lvl {
	case legacyLevelCrit:
		return LevelCrit
	case legacyLevelError:
		return LevelError
	case legacyLevelWarn:
		return LevelWarn
	case legacyLevelInfo:
		return LevelInfo
	case legacyLevelDebug:
		return LevelDebug
	case legacyLevelTrace:
		return LevelTrace
	}
	if lvl > legacyLevelTrace {
		return LevelTrace
	}
	return LevelCrit
}

// LevelAlignedString returns a 5-character string containing the name of a level.
func LevelAlignedString(l slog.Level) string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO "
	case LevelWarn:
		return "WARN "
	case LevelError:
		return "ERROR"
	case LevelCrit:
		return "CRIT "
	default:
		return "unknown level"
	}
}

// LevelString returns the lowercase name of a level.
func LevelString(l slog.Level) string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelCrit:
		return "crit"
	default:
		return "unknown"
	}
}

// A Logger writes key/value pairs to a Handler.
// Logger 将键值对写入处理器。
type Logger interface {
	// With returns a new Logger that has this logger's attributes plus the given attributes
	With(ctx ...interface{}) Logger

	// New is identical to With.
	New(ctx ...interface{}) Logger

	Log(level slog.Level, msg string, ctx ...interface{})
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})

	// Crit logs a message at the crit level and exits the process.
	Crit(msg string, ctx ...interface{})

	// Write logs a message at the specified level
	Write(level slog.Level, msg string, attrs ...any)

	// Enabled reports whether l emits log records at the given context and level.
	Enabled(ctx context.Context, level slog.Level) bool

	// Handler returns the underlying handler of the inner logger.
	Handler() slog.Handler
}

type logger struct {
	inner *slog.Logger
}

// NewLogger returns a logger with the specified handler set
func NewLogger(h slog.Handler) Logger {
	return &logger{slog.New(h)}
}

func (l *logger) Handler() slog.Handler {
	return l.inner.Handler()
}

// Write skips three frames so that the recorded PC points at the caller of
// the level method (or of the package-level alias), not at this file.
func (l *logger) Write(level slog.Level, msg string, attrs ...any) {
	if !l.inner.Enabled(context.Background(), level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	if len(attrs)%2 != 0 {
		attrs = append(attrs, nil, errorKey, "Normalized odd number of arguments by adding nil")
	}
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(attrs...)
	l.inner.Handler().Handle(context.Background(), r)
}

func (l *logger) Log(level slog.Level, msg string, attrs ...any) {
	l.Write(level, msg, attrs...)
}

func (l *logger) With(ctx ...interface{}) Logger {
	return &logger{l.inner.With(ctx...)}
}

func (l *logger) New(ctx ...interface{}) Logger {
	return l.With(ctx...)
}

func (l *logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.inner.Enabled(ctx, level)
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.Write(LevelTrace, msg, ctx...) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.Write(LevelDebug, msg, ctx...) }
func (l *logger) Info(msg string, ctx ...interface{}) { l.Write(LevelInfo, msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...interface{}) { l.Write(LevelWarn, msg, ctx...) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.Write(LevelError, msg, ctx...) }

func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.Write(LevelCrit, msg, ctx...)
	os.Exit(1)
}

var root atomic.Value

func init() {
	root.Store(&logger{slog.New(DiscardHandler())})
}

// SetDefault sets the default global logger
// SetDefault 设置默认的全局日志记录器
func SetDefault(l Logger) {
	root.Store(l)
	if lg, ok := l.(*logger); ok {
		slog.SetDefault(lg.inner)
	}
}

// Root returns the root logger
func Root() Logger {
	return root.Load().(Logger)
}

// The package-level helpers call Write directly so the call depth matches the
// method path and the recorded source points at client code.

// Trace logs at trace level on the root logger.
//
//	log.Trace("Cached ABI type", "type", name)
func Trace(msg string, ctx ...interface{}) { Root().Write(LevelTrace, msg, ctx...) }

// Debug logs at debug level on the root logger.
func Debug(msg string, ctx ...interface{}) { Root().Write(LevelDebug, msg, ctx...) }

// Info logs at info level on the root logger.
func Info(msg string, ctx ...interface{}) { Root().Write(LevelInfo, msg, ctx...) }

// Warn logs at warn level on the root logger.
func Warn(msg string, ctx ...interface{}) { Root().Write(LevelWarn, msg, ctx...) }

// Error logs at error level on the root logger.
func Error(msg string, ctx ...interface{}) { Root().Write(LevelError, msg, ctx...) }

// Crit logs at crit level on the root logger and exits.
func Crit(msg string, ctx ...interface{}) {
	Root().Write(LevelCrit, msg, ctx...)
	os.Exit(1)
}

// New returns a new logger with the given context.
func New(ctx ...interface{}) Logger {
	return Root().With(ctx...)
}
