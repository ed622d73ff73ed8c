// Package tracing provides OpenTelemetry tracing for HTTP request handling.
// Without an exporter configured the global provider is a no-op, so the
// middleware is safe to install unconditionally.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the application.
var tracer = otel.Tracer("sanctions-watch")

// GetTracer returns the global tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}
