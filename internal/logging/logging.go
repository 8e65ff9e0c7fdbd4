// Package logging provides the structured logrus.Logger this module's
// components trace through, following the WithField/WithFields idiom.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logrus.Logger configured for this module: text
// formatting, Info level by default.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Discard returns a logger that drops everything it's given, for
// callers that don't want tracing (validate.New falls back to it when
// given a nil logger).
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Component returns an Entry tagged with the component name that is
// emitting it, e.g. Component(log, "validate").
func Component(l *logrus.Logger, name string) *logrus.Entry {
	return l.WithField("component", name)
}
