// Package tracing provides OpenTelemetry tracing integration.
//
// Features:
//   - Automatic HTTP request tracing (Middleware)
//   - Client spans around outbound provider calls (StartClientSpan, EndSpan)
//   - W3C trace context propagation
//
// Example usage:
//
//	import "financespace/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.InitTracer("financespace", version)
//	    defer func() { _ = shutdown(context.Background()) }()
//	}
//
//	func callProvider(ctx context.Context) {
//	    ctx, span := tracing.StartClientSpan(ctx, "newsdata.fetch")
//	    defer func() { tracing.EndSpan(span, err) }()
//	    // ... call provider ...
//	}
package tracing
