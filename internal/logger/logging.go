// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
// Loggers write to stderr so stdout stays reserved for encodings.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed charm log that follows the global log level.
func New(prefix string) *log.Logger {
	level := log.GetLevel()
	return NewWithConfig(os.Stderr, prefix, level, level == log.DebugLevel, log.TextFormatter)
}
