// Package logging decouples the application from a specific logging
// framework. The rest of the codebase logs through the Logger interface;
// the logrus adapter is the only implementation in production.
package logging

// Logger is the structured logging interface used throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger with an error field attached.
	WithError(err error) Logger

	// WithField returns a logger with a single field attached.
	WithField(key string, value interface{}) Logger

	// Fatal logs at fatal level and exits the program.
	Fatal(msg string, fields ...Field)
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}
