// Package logging builds the application's slog logger. The browser owns
// the terminal, so records go to a size-rotated file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/lumberjack"
)

// Options configure the log destination and rotation.
type Options struct {
	// File is the log path. Empty logs to stderr.
	File  string
	Level string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultOptions rotate at 10 MB and keep five compressed backups for a week.
var DefaultOptions = Options{
	Level:      "info",
	MaxSizeMB:  10,
	MaxBackups: 5,
	MaxAgeDays: 7,
	Compress:   true,
}

// ParseLevel maps debug, warn and error to their slog levels and anything
// else to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to opts.File and a closer for the file.
// When the directory cannot be created the logger falls back to stderr.
func New(opts Options) (*slog.Logger, io.Closer) {
	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err == nil {
			lj := &lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    opts.MaxSizeMB,
				MaxBackups: opts.MaxBackups,
				MaxAge:     opts.MaxAgeDays,
				Compress:   opts.Compress,
				LocalTime:  true,
			}
			out, closer = lj, lj
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: ParseLevel(opts.Level)})
	return slog.New(handler), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
