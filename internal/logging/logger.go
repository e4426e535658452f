package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fadedpez/blackjack/internal/types"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var charmLevels = map[Level]log.Level{
	DEBUG: log.DebugLevel,
	INFO:  log.InfoLevel,
	WARN:  log.WarnLevel,
	ERROR: log.ErrorLevel,
}

// String returns the level name
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a level name such as "debug" into a Level
func ParseLevel(s string) (Level, error) {
	for level, name := range levelNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return level, nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger is a leveled key/value logger
type Logger struct {
	*log.Logger
}

// NewLogger creates a new logger instance writing to w
func NewLogger(w io.Writer, level Level) *Logger {
	return &Logger{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "2006-01-02 15:04:05.000",
			Level:           charmLevels[level],
		}),
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewLogger(io.Discard, ERROR)
}

// With returns a child logger carrying the given key/value pairs
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{Logger: l.Logger.With(keyvals...)}
}

// WithPrefix returns a child logger with a prefix such as "round"
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{Logger: l.Logger.WithPrefix(prefix)}
}

// LogError logs a GameError with appropriate context
func (l *Logger) LogError(err error) {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		keyvals := []interface{}{"code", gameErr.Code, "message", gameErr.Message}
		if gameErr.Err != nil {
			keyvals = append(keyvals, "cause", gameErr.Err)
		}
		l.Error("Game error occurred", keyvals...)
	} else {
		l.Error("Unexpected error", "err", err)
	}
}

// Default logger instance
var Default = NewLogger(os.Stderr, INFO)
