package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the shared logger. It discards output until Initialize is called.
var Logger = log.NewWithOptions(io.Discard, log.Options{})

// Options controls where and how much the application logs.
type Options struct {
	Debug bool
	File  string
	Level string
}

// Initialize configures Logger. Logs go to stderr unless a file is given.
// It returns a closer for the log file, which is a no-op for stderr.
func Initialize(options Options) (func() error, error) {
	if os.Getenv("POMODORO_DEBUG") == "1" {
		options.Debug = true
	}

	level := log.InfoLevel
	if options.Level != "" {
		parsed, err := log.ParseLevel(options.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	if options.Debug {
		level = log.DebugLevel
	}

	var writer io.Writer = os.Stderr
	closer := func() error { return nil }
	formatter := log.TextFormatter

	if options.File != "" {
		if err := os.MkdirAll(filepath.Dir(options.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		logFile, err := os.OpenFile(options.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writer = logFile
		closer = logFile.Close
		formatter = log.LogfmtFormatter
	}

	Logger = log.NewWithOptions(writer, log.Options{
		Level:           level,
		Prefix:          "pomodoro",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Formatter:       formatter,
	})
	Logger.Debug("logging initialized", "level", level, "file", options.File)

	return closer, nil
}
