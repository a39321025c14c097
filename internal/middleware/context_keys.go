package middleware

import (
	"context"
	"log/slog"
)

// ctxKey is a private type for request-context keys to prevent collisions.
type ctxKey string

const (
	loggerCtxKey  = ctxKey("logger")
	subjectCtxKey = ctxKey("authSubject")
)

// WithLogger returns a context carrying the given request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from the context. It
// falls back to slog.Default when the logging middleware has not run.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetSubjectFromCtx returns the authenticated subject stored by AuthMiddleware.
func GetSubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectCtxKey).(string)
	return subject, ok
}
