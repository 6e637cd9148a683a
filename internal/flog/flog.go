// Package flog is the module-wide diagnostic logger. Output goes to
// stderr and stays silent below warn level unless raised through the
// EASYX_LOG environment variable or SetLevel.
package flog

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the shared logger instance.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "easyx",
})

func init() {
	Logger.SetLevel(log.WarnLevel)
	if level := os.Getenv("EASYX_LOG"); level != "" {
		SetLevel(level)
	}
}

// SetLevel adjusts the log level by name. Unknown names are ignored.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		Logger.SetLevel(log.DebugLevel)
	case "info":
		Logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		Logger.SetLevel(log.WarnLevel)
	case "error":
		Logger.SetLevel(log.ErrorLevel)
	}
}

// Debug logs a debug message with key-value pairs.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an informational message with key-value pairs.
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning with key-value pairs.
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error with key-value pairs.
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
