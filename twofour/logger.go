package twofour

// Logger interface matches the implementation of slog.
// See pkg logger for adapters for logrus and zap.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DiscardLogger is the default logger and drops everything.
type DiscardLogger struct{}

func (DiscardLogger) Debug(string, ...any) {}

func (DiscardLogger) Info(string, ...any) {}

func (DiscardLogger) Warn(string, ...any) {}

func (DiscardLogger) Error(string, ...any) {}
