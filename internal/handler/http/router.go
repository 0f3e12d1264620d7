package http

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"financespace/internal/handler/http/middleware"
	"financespace/internal/handler/http/news"
	"financespace/internal/handler/http/requestid"
	"financespace/internal/handler/http/research"
	"financespace/internal/handler/http/validate"
	"financespace/internal/observability/tracing"
)

// RouterConfig carries the dependencies of the API handler tree.
type RouterConfig struct {
	Logger    *slog.Logger
	DB        *sql.DB
	Version   string
	Providers map[string]bool

	Research research.Service
	News     news.Fetcher

	CORS           middleware.CORSConfig
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// NewRouter registers every route and wraps the mux in the middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health", &HealthHandler{DB: cfg.DB, Version: cfg.Version, Providers: cfg.Providers})
	mux.Handle("GET /ready", &ReadyHandler{DB: cfg.DB})
	mux.Handle("GET /live", &LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	research.Register(mux, cfg.Research, validate.New())
	news.Register(mux, cfg.News)

	if cfg.CORS.Logger == nil {
		cfg.CORS.Logger = logger
	}

	// First is outermost. Tracing stays innermost so the span sees the
	// matched route pattern.
	return Chain(mux,
		requestid.Middleware,
		Logging(logger),
		Recover(logger),
		MetricsMiddleware,
		InputValidation(maxBody),
		Timeout(cfg.RequestTimeout),
		middleware.CORS(cfg.CORS),
		tracing.Middleware,
	)
}
