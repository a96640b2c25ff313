package logger

import (
	"github.com/sirupsen/logrus"

	"twofour/twofour"
)

// Logrus wraps a logrus.Logger to implement twofour.Logger.
type Logrus struct {
	logger *logrus.Logger
}

// NewLogrus creates a twofour.Logger from a logrus.Logger.
func NewLogrus(logger *logrus.Logger) twofour.Logger {
	return &Logrus{logger: logger}
}

// Debug logs a debug message with key-value pairs.
func (l *Logrus) Debug(msg string, args ...any) {
	l.logger.WithFields(argsToFields(args)).Debug(msg)
}

// Info logs an info message with key-value pairs.
func (l *Logrus) Info(msg string, args ...any) {
	l.logger.WithFields(argsToFields(args)).Info(msg)
}

// Warn logs a warning message with key-value pairs.
func (l *Logrus) Warn(msg string, args ...any) {
	l.logger.WithFields(argsToFields(args)).Warn(msg)
}

// Error logs an error message with key-value pairs.
func (l *Logrus) Error(msg string, args ...any) {
	l.logger.WithFields(argsToFields(args)).Error(msg)
}

// argsToFields pairs up slog-style alternating keys and values. Non-string
// keys and a trailing odd argument are dropped.
func argsToFields(args []any) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i < len(args)-1; i += 2 {
		if key, ok := args[i].(string); ok {
			fields[key] = args[i+1]
		}
	}
	return fields
}
