// Package log provides the component loggers used across the service.
package log

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	errorColor = "\033[31m"
	warnColor  = "\033[33m"
	colorReset = "\033[0m"
)

// Logger writes "[PREFIX] [LEVEL] message" lines for one component.
type Logger struct {
	entry *logrus.Logger
}

// New creates a logger for the component named prefix. color is the ANSI
// sequence used for the prefix; pass "" for plain output.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if w == nil {
		return nil, errors.New("logger writer must not be nil")
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: strings.ToUpper(prefix), color: color})

	return &Logger{entry: l}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

type prefixFormatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	level := strings.ToUpper(e.Level.String())
	if level == "WARNING" {
		level = "WARN"
	}

	if f.color == "" {
		return []byte(fmt.Sprintf("[%s] [%s] %s\n", f.prefix, level, e.Message)), nil
	}

	levelColor := f.color
	switch e.Level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = errorColor
	case logrus.WarnLevel:
		levelColor = warnColor
	}
	return []byte(fmt.Sprintf("%s[%s]%s %s[%s]%s %s\n",
		f.color, f.prefix, colorReset, levelColor, level, colorReset, e.Message)), nil
}
