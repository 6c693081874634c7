package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	base  *logrus.Logger
	entry *logrus.Entry
}

type Option func(*logrus.Logger, logrus.Fields)

// WithJSON switches output to one JSON object per line.
func WithJSON() Option {
	return func(l *logrus.Logger, _ logrus.Fields) {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
}

func WithService(name string) Option {
	return func(_ *logrus.Logger, fields logrus.Fields) {
		fields["service"] = name
	}
}

func New(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	fields := logrus.Fields{"service": "mob-social"}
	for _, opt := range opts {
		opt(base, fields)
	}

	return &Logger{
		base:  base,
		entry: base.WithFields(fields),
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Logrus exposes the underlying logger for libraries that take one.
func (l *Logger) Logrus() *logrus.Logger {
	return l.base
}
