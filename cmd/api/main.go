package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"financespace/internal/app"
	"financespace/internal/config"
	hhttp "financespace/internal/handler/http"
	"financespace/internal/handler/http/middleware"
	pgRepo "financespace/internal/infra/adapter/persistence/postgres"
	"financespace/internal/infra/db"
	"financespace/internal/observability/logging"
	"financespace/internal/observability/tracing"
	"financespace/internal/usecase/research"

	_ "financespace/docs" // swagger docs
)

// @title           FinanceSpace API
// @version         1.0
// @description     AI research assistant for finance and space topics.
// @description     LLM queries, web search, combined summaries and categorized news with provider fallback.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

const shutdownTimeout = 5 * time.Second

func main() {
	logger := initLogger()

	if err := config.LoadDotEnv(); err != nil {
		logger.Error("failed to load .env files", slog.Any("error", err))
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration error", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracer := tracing.InitTracer("financespace-api", cfg.Version)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			logger.Error("failed to shut down tracer", slog.Any("error", err))
		}
	}()

	database := initDatabase(logger, cfg.DatabaseURL)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, cfg, database)
	runServer(logger, cfg, handler)
}

// initLogger builds the process logger from LOG_LEVEL and LOG_FORMAT and
// installs it as the slog default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the history store and runs migrations.
func initDatabase(logger *slog.Logger, dsn string) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Open(ctx, dsn)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer wires providers, use cases and routes into one handler.
func setupServer(logger *slog.Logger, cfg *config.AppConfig, database *sql.DB) http.Handler {
	client := app.NewHTTPClient()
	disp := app.NewDispatchers(cfg.Outbound, cfg.LLM.Timeout)

	feeds, err := app.Feeds(cfg.FallbackFeedsFile)
	if err != nil {
		logger.Error("failed to load fallback feeds", slog.Any("error", err))
		os.Exit(1)
	}

	completer, err := app.Completer(cfg.LLM)
	if err != nil {
		logger.Error("failed to initialize LLM", slog.Any("error", err))
		os.Exit(1)
	}

	newsSvc := app.NewsService(cfg.News, feeds, client, disp.Provider)
	researchSvc := &research.Service{
		LLM:            completer,
		Web:            app.Searcher(cfg.Search, client),
		HistoryRepo:    pgRepo.NewHistoryRepo(database),
		StatusRepo:     pgRepo.NewStatusRepo(database),
		LLMDispatch:    disp.LLM,
		SearchDispatch: disp.Provider,
	}

	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		logger.Error("failed to load CORS configuration", slog.Any("error", err))
		os.Exit(1)
	}
	corsConfig.Logger = logger

	logger.Info("server components initialized",
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.Int("outbound_workers", disp.Provider.Workers()),
		slog.Duration("provider_timeout", disp.Provider.Timeout()),
		slog.Duration("llm_timeout", disp.LLM.Timeout()),
		slog.Any("crypto_chain", newsSvc.CryptoChain.Names()),
		slog.Int("fallback_feeds", len(feeds)),
		slog.Any("allowed_origins", corsConfig.AllowedOrigins))

	return hhttp.NewRouter(hhttp.RouterConfig{
		Logger:         logger,
		DB:             database,
		Version:        cfg.Version,
		Providers:      cfg.ProvidersConfigured(),
		Research:       researchSvc,
		News:           newsSvc,
		CORS:           corsConfig,
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   hhttp.DefaultMaxBodyBytes,
	})
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()
	logger.Info("server stopped")
}
