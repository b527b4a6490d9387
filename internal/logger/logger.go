package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var logFile *os.File

// Init configures the global logrus logger: parses the level and
// optionally redirects output to a file.
func Init(level, file string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		logrus.SetOutput(f)
	}
	return nil
}

// Close closes the log file if one was opened
func Close() {
	if logFile != nil {
		_ = logFile.Close()
	}
}
