package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides structured logging tagged with the emitting component
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// ParseLevel accepts zerolog level names plus "warning"; empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}

	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// New builds the application logger writing to stderr in the given format.
func New(format Format, level zerolog.Level) (*ZerologAdapter, error) {
	return NewWithWriter(os.Stderr, format, level)
}

func NewWithWriter(w io.Writer, format Format, level zerolog.Level) (*ZerologAdapter, error) {
	switch format {
	case FormatJSON:
		return NewZerolog(w, level), nil
	case FormatConsole, "":
		return NewZerolog(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return NewZerolog(io.Discard, zerolog.Disabled)
}
