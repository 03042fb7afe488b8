// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package log provides the minimal logging interface used by the simulator.
//
package log

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by the simulator. A *logrus.Logger
// satisfies it.
//
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Level is a logging level. Messages less severe than the logger level are
// discarded.
//
type Level = logrus.Level

// Logging levels.
//
const (
	LevelDebug = logrus.DebugLevel
	LevelInfo  = logrus.InfoLevel
	LevelError = logrus.ErrorLevel
)

// ParseLevel returns the level with the given name, as understood by logrus.
// An empty string means "info".
//
func ParseLevel(name string) (Level, error) {
	if name == "" {
		return LevelInfo, nil
	}
	l, err := logrus.ParseLevel(name)
	if err != nil {
		return 0, errors.Wrapf(err, "unknown log level %q", name)
	}
	return l, nil
}

// New returns a Logger writing messages at or above level to w.
//
func New(w io.Writer, level Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
