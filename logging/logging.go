package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var ErrUnknownFormat = errors.New("logging: unknown format")

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options selects the level and encoding of a logger
type Options struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`

	// Output defaults to stderr
	Output io.Writer `mapstructure:"-"`

	// NoColor disables console colouring, set for files
	NoColor bool `mapstructure:"noColor"`
}

// DefaultOptions logs info and above to the console
func DefaultOptions() Options {
	return Options{Level: "info", Format: FormatConsole}
}

// New builds a timestamped logger from opts
// The level is applied to the logger, never to the zerolog global level
func New(opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	format, err := ParseFormat(opts.Format)
	if err != nil {
		return zerolog.Nop(), err
	}
	if format == FormatConsole {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    opts.NoColor,
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// ParseFormat normalizes an output format name, empty means console
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case "":
		return FormatConsole, nil
	case FormatConsole, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ParseLevel accepts zerolog level names, empty means info
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: %w", err)
	}
	if level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("logging: unknown level %q", s)
	}
	return level, nil
}

// Nop discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Component tags a sub-logger with the emitting component
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
