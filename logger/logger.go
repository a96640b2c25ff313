// Package logger provides adapters for popular logger libraries to work with twofour's Logger interface.
//
// Note that the standard library's slog.Logger already implements twofour.Logger directly.
//
// Example with zap:
//
//	zapLogger, _ := zap.NewDevelopment()
//	tree := twofour.New[int, string](twofour.Natural[int](),
//	    twofour.WithLogger(logger.NewZap(zapLogger)))
package logger
