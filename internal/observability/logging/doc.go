// Package logging provides structured logging on top of log/slog.
//
// Loggers emit JSON to stdout by default. LOG_LEVEL selects the minimum
// level (debug, info, warn, error) and LOG_FORMAT=text switches to the
// human-readable handler for local runs.
//
// Request-scoped loggers travel in the context:
//
//	ctx = logging.WithLogger(ctx, logging.WithRequestID(ctx, base))
//	logging.FromContext(ctx).InfoContext(ctx, "fetching news", slog.String("category", c))
package logging
