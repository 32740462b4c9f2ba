// Package logging is the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once      sync.Once
	singleton *log.Logger
)

func logger() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "raycaster",
			CallerOffset:    1,
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// SetLevel accepts debug, info, warn, error or fatal.
func SetLevel(level string) error {
	l, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	logger().SetLevel(l)
	return nil
}

// SetOutput redirects log output, e.g. away from a terminal UI.
func SetOutput(w io.Writer) {
	logger().SetOutput(w)
}

func Debug(msg string, keyvals ...interface{}) {
	logger().Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	logger().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	logger().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	logger().Error(msg, keyvals...)
}

// Fatal logs and exits with status 1.
func Fatal(msg string, keyvals ...interface{}) {
	logger().Fatal(msg, keyvals...)
}
