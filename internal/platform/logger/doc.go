// Package logger provides structured logging functionality for the
// application: slog setup with a configurable level, and helpers for
// carrying a request-scoped logger through a context.Context.
package logger
