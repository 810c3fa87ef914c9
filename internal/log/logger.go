// Package log is the application logger. It wraps logrus with the small call
// surface the rest of foldercolor uses. Output is discarded until Configure
// points it somewhere, because the picker owns the terminal while it runs.
package log

import (
	"io"

	"foldercolor/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger(WithOutput(io.Discard))
)

// Field is a single structured key/value attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger.
type Option func(*logrus.Logger)

// WithOutput sends log lines to w.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithJSON switches to JSON lines with message/timestamp keys.
func WithJSON() Option {
	return func(l *logrus.Logger) {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg:  "message",
				logrus.FieldKeyTime: "timestamp",
			},
		})
	}
}

type Logger struct {
	entry *logrus.Entry
}

func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	for _, opt := range opts {
		opt(base)
	}
	return &Logger{entry: logrus.NewEntry(base)}
}

// With returns a logger that adds fields to every line.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data)}
}

func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Debug logs msg only when debug logging is on.
func (l *Logger) Debug(msg string) {
	if isDebug {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted message only when debug logging is on.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry.Debugf(format, args...)
	}
}

func (l *Logger) Warn(msg string) {
	l.entry.Warn(msg)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Configure replaces the package logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Default returns the package logger.
func Default() *Logger {
	return logger
}

func SetDebug(debug bool) {
	isDebug = debug
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError attaches err, its kind, and the detail carried by typed
// application errors.
func LogWithError(err error) *Logger {
	fields := []Field{F("error", err.Error()), F("error_kind", int(errors.KindOf(err)))}

	var toolErr *errors.ToolError
	var cfgErr *errors.ConfigError
	var catErr *errors.CatalogError
	switch {
	case errors.As(err, &toolErr):
		if toolErr.Tool() != "" {
			fields = append(fields, F("tool", toolErr.Tool()))
		}
	case errors.As(err, &cfgErr):
		if cfgErr.Param() != "" {
			fields = append(fields, F("param", cfgErr.Param()))
		}
	case errors.As(err, &catErr):
		if catErr.Entry() != "" {
			fields = append(fields, F("entry", catErr.Entry()))
		}
	}
	return logger.With(fields...)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

func Info(msg string) {
	logger.Info(msg)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func Debug(msg string) {
	logger.Debug(msg)
}

func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func Warn(msg string) {
	logger.Warn(msg)
}

func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func Error(msg string) {
	logger.Error(msg)
}

func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
