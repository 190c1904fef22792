package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	Level      string    // debug, info, warn or error; anything else means info
	File       string    // rotating JSON log file, "" to disable
	MaxSizeMB  int       // rotate after this many megabytes
	MaxBackups int       // rotated files to keep
	MaxAgeDays int       // days to keep rotated files
	Console    bool      // write human-readable lines to Writer
	Writer     io.Writer // console destination, os.Stderr when nil
}

// New builds a logger from opts. With neither console nor file output the
// logger discards everything.
func New(opts Options) zerolog.Logger {
	var writers []io.Writer

	if opts.Console {
		out := opts.Writer
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly})
	}

	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		})
	}

	if len(writers) == 0 {
		return Nop()
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(ParseLevel(opts.Level))
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name to a zerolog level
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
