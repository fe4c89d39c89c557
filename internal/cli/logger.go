// internal/cli/logger.go
package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tamzrod/homewatch/internal/config"
)

// initLogger builds the process logger: human-readable console output on
// stderr plus a rotating JSON log file. If the file writer cannot be
// set up the logger continues console-only; losing the file must not
// keep the watcher from starting.
func initLogger(cfg config.LogConfig, verbose, quiet bool) (zerolog.Logger, io.Closer) {
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	var writer io.Writer = console
	var closer io.Closer

	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		writer = zerolog.MultiLevelWriter(console, lj)
		closer = lj
	}

	logger := zerolog.New(writer).
		Level(selectLevel(verbose, quiet)).
		With().Timestamp().Logger()

	return logger, closer
}

func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
