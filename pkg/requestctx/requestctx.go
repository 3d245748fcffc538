// Package requestctx carries per-request metadata through context values.
package requestctx

import "context"

type ctxKey int

const correlationIDKey ctxKey = iota

// WithCorrelationID returns a child context carrying the correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID returns the correlation ID stored in ctx, or "" when absent.
func CorrelationID(ctx context.Context) string {
	if s, ok := ctx.Value(correlationIDKey).(string); ok {
		return s
	}
	return ""
}
