package logging

import (
	"context"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// FieldTraceID is the log field carrying the invocation trace ID.
const FieldTraceID = "trace_id"

// EnvTraceID lets callers supply a trace ID from outside the process.
const EnvTraceID = "USERDIR_TRACE_ID"

type traceIDKey struct{}

// ContextWithTraceID returns a context carrying traceID.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the trace ID already in ctx, then the one in
// USERDIR_TRACE_ID, and otherwise a new ULID.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	if id := os.Getenv(EnvTraceID); id != "" {
		return id
	}
	return ulid.Make().String()
}

// TraceHook adds the trace ID of an event's context to the event. Events
// get a context through Event.Ctx.
type TraceHook struct{}

// Run implements zerolog.Hook.
func (TraceHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if traceID := TraceIDFromContext(e.GetCtx()); traceID != "" {
		e.Str(FieldTraceID, traceID)
	}
}
