// Package context carries request-scoped tracing values between the HTTP
// layer and the logger.
package context

import "context"

// TraceContext identifies one request across log lines and response headers.
type TraceContext struct {
	TraceID   string
	RequestID string
}

type traceKey struct{}

// WithTrace stores the trace in ctx.
func WithTrace(ctx context.Context, t *TraceContext) context.Context {
	return context.WithValue(ctx, traceKey{}, t)
}

// GetTrace returns the trace stored in ctx, or nil outside a request.
func GetTrace(ctx context.Context) *TraceContext {
	t, _ := ctx.Value(traceKey{}).(*TraceContext)
	return t
}
