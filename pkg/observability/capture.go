package observability

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// maxStackFrames bounds captured stack depth.
const maxStackFrames = 32

// CaptureError emits a structured event for an unhandled error: exception
// type and message, stack frames, the request's breadcrumb trail, current
// span context, and user tags. It never panics and is safe on contexts
// without a trail or span.
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}

	frames := stackFrames(3)
	crumbs := []Breadcrumb(nil)
	if t := TrailFrom(ctx); t != nil {
		crumbs = t.Snapshot()
	}

	attrs := []any{
		"error", err.Error(),
		"error_type", fmt.Sprintf("%T", err),
		"stack", frames,
		"breadcrumbs", crumbs,
	}
	span := trace.SpanFromContext(ctx)
	if sc := span.SpanContext(); sc.IsValid() {
		attrs = append(attrs, "trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
	}
	for k, v := range tags {
		attrs = append(attrs, "tag_"+k, v)
	}

	slog.ErrorContext(ctx, "Unhandled error", attrs...)

	span.RecordError(err)
	for _, c := range crumbs {
		span.AddEvent("breadcrumb", trace.WithAttributes(
			attribute.String("category", c.Category),
			attribute.String("message", c.Message),
		))
	}
}

func stackFrames(skip int) []string {
	pcs := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	out := make([]string, 0, n)
	for {
		f, more := frames.Next()
		out = append(out, fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line))
		if !more {
			break
		}
	}
	return out
}
