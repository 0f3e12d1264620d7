// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Provider metrics (news, search and LLM calls, fallback stages)
//   - Database query metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "financespace/internal/observability/metrics"
//
//	start := time.Now()
//	articles, err := provider.Fetch(ctx, req)
//	metrics.RecordProviderCall("gnews", len(articles), err, time.Since(start))
package metrics
