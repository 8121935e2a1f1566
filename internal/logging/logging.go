// Package logging provides the logrus-backed Logger used across the pipeline.
package logging

import (
	"io"

	"github.com/codetrail/codetrail/internal/contract"
	"github.com/sirupsen/logrus"
)

// logrusLogger adapts a logrus.Logger to the contract.Logger interface.
type logrusLogger struct {
	log *logrus.Logger
}

var _ contract.Logger = &logrusLogger{} // Compile-time check

// New creates a leveled logger writing human-readable lines to w.
// Debug mode lowers the threshold to include debug messages.
func New(w io.Writer, debug bool) contract.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return &logrusLogger{log: log}
}

func (l *logrusLogger) Debugf(format string, args ...any) {
	l.log.Debugf(format, args...)
}

func (l *logrusLogger) Infof(format string, args ...any) {
	l.log.Infof(format, args...)
}

func (l *logrusLogger) Warnf(format string, args ...any) {
	l.log.Warnf(format, args...)
}

func (l *logrusLogger) Errorf(format string, args ...any) {
	l.log.Errorf(format, args...)
}
