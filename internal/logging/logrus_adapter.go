package logging

import (
	"github.com/sirupsen/logrus"
)

// LogrusAdapter implements Logger on top of a logrus entry.
type LogrusAdapter struct {
	entry *logrus.Entry
}

// NewLogrusAdapter creates a Logger with the given level ("debug", "info",
// "warn", "error") and format ("text" or "json"). An unknown level falls
// back to info.
func NewLogrusAdapter(level, format string) Logger {
	logger := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &LogrusAdapter{entry: logrus.NewEntry(logger)}
}

// NewLogrusAdapterFromLogger wraps an existing logrus logger, keeping its
// level and formatter.
func NewLogrusAdapterFromLogger(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.New()
	}
	return &LogrusAdapter{entry: logrus.NewEntry(logger)}
}

func (l *LogrusAdapter) Debug(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Debug(msg)
}

func (l *LogrusAdapter) Info(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Info(msg)
}

func (l *LogrusAdapter) Warn(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Warn(msg)
}

func (l *LogrusAdapter) Error(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Error(msg)
}

func (l *LogrusAdapter) WithError(err error) Logger {
	return &LogrusAdapter{entry: l.entry.WithError(err)}
}

func (l *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return &LogrusAdapter{entry: l.entry.WithField(key, value)}
}

func (l *LogrusAdapter) Fatal(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Fatal(msg)
}

func convertFields(fields []Field) logrus.Fields {
	converted := make(logrus.Fields, len(fields))
	for _, f := range fields {
		converted[f.Key] = f.Value
	}
	return converted
}
