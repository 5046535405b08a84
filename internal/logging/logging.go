// Package logging builds the zerolog logger shared by the UI, the CLI and the
// crontab services: a human-friendly console sink plus an optional JSON file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ytget/cron-manager/internal/platform"
)

// Time format used by the console writer
const ConsoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Default configuration values
const (
	DefaultLevel = "info"
)

// Config selects sinks and verbosity
type Config struct {
	Level   string
	Console bool
	NoColor bool   // plain console output, for pipes and files
	File    string // JSON log file, disabled when empty

	// Out overrides the console destination (stderr by default)
	Out io.Writer
}

// New builds a logger for cfg. The returned closer releases the log file and
// is never nil.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	zerolog.ErrorFieldName = "err"

	var writers []io.Writer
	if cfg.Console {
		out := cfg.Out
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: out, TimeFormat: ConsoleTimeFormat, NoColor: cfg.NoColor})
	}

	var closer io.Closer = nopCloser{}
	if path := strings.TrimSpace(cfg.File); path != "" {
		if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, platform.DefaultFilePermissions)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, f)
		closer = f
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

// ParseLevel maps a config string to a zerolog level, defaulting to info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "OFF", "DISABLED":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
