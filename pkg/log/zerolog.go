package log

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	rootMu sync.RWMutex
	root   = zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()
)

// ZerologLogger implements Logger on top of a zerolog.Logger.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger wraps zl.
func NewZerologLogger(zl zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{zl: zl}
}

// Debug implements Logger.Debug.
func (l *ZerologLogger) Debug(msg string, fields ...any) {
	write(l.zl.Debug(), msg, fields)
}

// Info implements Logger.Info.
func (l *ZerologLogger) Info(msg string, fields ...any) {
	write(l.zl.Info(), msg, fields)
}

// Warn implements Logger.Warn.
func (l *ZerologLogger) Warn(msg string, fields ...any) {
	write(l.zl.Warn(), msg, fields)
}

// Error implements Logger.Error.
func (l *ZerologLogger) Error(msg string, fields ...any) {
	e := l.zl.Error()
	if e != nil && len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			e = e.Stack().Err(err)
			fields = fields[1:]
		}
	}
	write(e, msg, fields)
}

// With implements Logger.With.
func (l *ZerologLogger) With(fields ...any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &ZerologLogger{zl: l.zl.With().Fields(fields).Logger()}
}

// Enabled implements Logger.Enabled.
func (l *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	zlvl := toZerologLevel(level)
	return zlvl >= l.zl.GetLevel() && zlvl >= zerolog.GlobalLevel()
}

func write(e *zerolog.Event, msg string, fields []any) {
	if e == nil {
		return
	}
	if len(fields) > 0 {
		e = e.Fields(fields)
	}
	e.Msg(msg)
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, errors.NewValidationError("log_level", "must be one of debug, info, warn, error", name)
	}
}

// GetLogger returns the process-wide logger.
func GetLogger() Logger {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return &ZerologLogger{zl: root}
}

// GetLoggerWithName returns the process-wide logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

// SetLogger replaces the process-wide zerolog logger.
func SetLogger(zl zerolog.Logger) {
	rootMu.Lock()
	defer rootMu.Unlock()
	root = zl
}

// SetupLogger configures the process-wide logger to write JSON lines to w at
// the named level, and routes errors.Warn through it.
func SetupLogger(level string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if w == nil {
		w = os.Stderr
	}

	zl := zerolog.New(w).Level(toZerologLevel(lvl)).With().Timestamp().Logger()
	SetLogger(zl)

	errors.SetZerologWarnFunc(func(warning error) {
		e := zl.Warn()
		var m zerolog.LogObjectMarshaler
		if errors.As(warning, &m) {
			e = e.EmbedObject(m)
		}
		e.Err(warning).Msg("warning")
	})
	return nil
}

type zerologProvider struct{}

// Provider returns a LoggerProvider backed by the process-wide logger.
func Provider() LoggerProvider {
	return zerologProvider{}
}

func (zerologProvider) GetLogger() Logger { return GetLogger() }

func (zerologProvider) GetLoggerWithName(name string) Logger { return GetLoggerWithName(name) }

func (zerologProvider) SetLevel(level Level) {
	rootMu.Lock()
	defer rootMu.Unlock()
	root = root.Level(toZerologLevel(level))
}
