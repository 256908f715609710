// Package logging provides the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu  sync.Mutex
	log *logrus.Logger
)

// Init configures the logger. An unparsable level falls back to warn.
// When logFile is set, output goes to the file and, if console is true,
// also to stderr.
func Init(level, logFile string, console bool) error {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	l.SetLevel(lvl)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var writers []io.Writer
	if console || logFile == "" {
		writers = append(writers, os.Stderr)
	}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return err
		}
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		writers = append(writers, file)
	}
	l.SetOutput(io.MultiWriter(writers...))

	mu.Lock()
	log = l
	mu.Unlock()
	return nil
}

// SetOutput redirects the logger, mainly for tests.
func SetOutput(w io.Writer) {
	Get().SetOutput(w)
}

// Get returns the logger, creating a warn-level stderr logger on first use.
func Get() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// WithField starts an entry carrying one field.
func WithField(key string, value any) *logrus.Entry {
	return Get().WithField(key, value)
}

func Debugf(format string, args ...any) {
	Get().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	Get().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	Get().Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	Get().Errorf(format, args...)
}
