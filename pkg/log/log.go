// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Fields is a set of structured fields attached to a log entry.
type Fields = logrus.Fields

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
	// WithFields returns a Logger that attaches the given fields
	// to every entry it writes.
	WithFields(fields Fields) Logger
}

type logger struct {
	entry *logrus.Entry
}

// New returns a Logger writing text entries to stderr at info level.
func New() Logger {
	return NewWithOutput(os.Stderr, logrus.InfoLevel)
}

// NewWithLevel returns a stderr Logger at the named level
// (e.g. "debug", "info", "error").
func NewWithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return NewWithOutput(os.Stderr, lvl), nil
}

// NewWithOutput returns a Logger writing to w at the given level.
func NewWithOutput(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return &logger{entry: logrus.NewEntry(l)}
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) Fatal(str string) {
	l.entry.Fatal(str)
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(fields)}
}
