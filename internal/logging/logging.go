// Package logging configures diagnostic logging. The terminal belongs to the
// TUI, so logs only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures logrus. If filename is empty, logging is discarded.
// The returned cleanup closes the log file.
func Setup(filename, level string) (cleanup func(), err error) {
	lvl := logrus.InfoLevel
	if level != "" {
		lvl, err = logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	logrus.SetLevel(lvl)

	if filename == "" {
		logrus.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	logrus.SetOutput(f)

	return func() {
		logrus.SetOutput(io.Discard)
		f.Close()
	}, nil
}
