// Package logger builds charmbracelet/log loggers for the kompositum commands.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to stderr at the global log level.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, log.GetLevel())
}

// NewWithWriter creates a logger with an explicit output and level.
func NewWithWriter(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
}

// SetLevel parses level and applies it globally. Unknown levels fall back
// to info.
func SetLevel(level string) log.Level {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	return lvl
}
