package logging

import (
	"fmt"

	"github.com/rs/zerolog"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Logger is the sink the session manager reports to.
type Logger interface {
	Log(level Level, message string)
}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(level Level, message string)

func (f LoggerFunc) Log(level Level, message string) {
	f(level, message)
}

type nopLogger struct{}

func (nopLogger) Log(Level, string) {}

// Nop discards everything.
func Nop() Logger {
	return nopLogger{}
}

var _ Logger = (*ZerologLogger)(nil)

// ZerologLogger forwards messages to a zerolog.Logger.
type ZerologLogger struct {
	logger zerolog.Logger
}

func NewZerolog(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

func (z *ZerologLogger) Log(level Level, message string) {
	z.logger.WithLevel(zerologLevel(level)).Msg(message)
}

func zerologLevel(level Level) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}

// Safe calls logger.Log and swallows any panic it raises, so a broken sink
// cannot change the outcome of the operation being logged. A nil logger is ignored.
func Safe(logger Logger, level Level, message string) {
	if logger == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	logger.Log(level, message)
}
