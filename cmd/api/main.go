package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"journalfetch/internal/cache"
	"journalfetch/internal/config"
	"journalfetch/internal/database"
	"journalfetch/internal/database/migration"
	"journalfetch/internal/fetcher"
	handlers "journalfetch/internal/http/handler"
	"journalfetch/internal/http/middleware"
	"journalfetch/internal/logging"
	"journalfetch/internal/metrics"
	"journalfetch/internal/otel"
	"journalfetch/internal/preference"
	"journalfetch/internal/preference/postgres"
	"journalfetch/internal/service"
	"journalfetch/internal/storage"
	"journalfetch/internal/viewer"
)

// @title Journal Fetch API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logging.New(os.Stdout, cfg.LogLevel, time.Local)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		fatal(log, "failed to initialize tracing", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	journalMetrics, err := metrics.NewJournal(reg)
	if err != nil {
		fatal(log, "failed to register journal metrics", err)
	}
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		fatal(log, "failed to register http metrics", err)
	}

	// Preference backend: a JSON file by default, PostgreSQL when selected
	var (
		prefs  preference.Store
		pinger handlers.Pinger
	)
	switch cfg.Preferences.Backend {
	case config.PreferencesBackendPostgres:
		if !database.Configured(cfg.Database) {
			fatal(log, "postgres preferences backend requires DB_HOST, DB_USER and DB_NAME", database.ErrNotConfigured)
		}
		db, err := openDatabase(ctx, cfg)
		if err != nil {
			fatal(log, "failed to connect to database", err)
		}
		defer db.Close()
		prefs = postgres.NewPreferencePostgres(db)
		pinger = db
	default:
		prefs = preference.NewFile(cfg.Preferences.FilePath)
	}

	cacheOpts := []cache.Option{cache.WithLogger(log), cache.WithMetrics(journalMetrics)}
	if cfg.MinIO.Enabled() {
		// Initialize reusable S3-compatible object storage client (MinIO-supported)
		mirror, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			fatal(log, "failed to initialize object storage", err)
		}
		cacheOpts = append(cacheOpts, cache.WithMirror(mirror))
	}
	docCache, err := cache.New(cfg.Cache.DocumentsDir, cacheOpts...)
	if err != nil {
		fatal(log, "failed to prepare documents directory", err)
	}

	journals := service.NewJournalService(
		fetcher.New(cfg.Journal, fetcher.WithLogger(log), fetcher.WithMetrics(journalMetrics)),
		docCache,
		viewer.New(),
		service.WithLogger(log),
	)
	onboarding := service.NewOnboarding(ctx, prefs, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, pinger, journals, onboarding)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", handlers.SwaggerUI(cfg.AppHost))

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error("server_shutdown_failed", slog.String("error", err.Error()))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server_starting",
		slog.String("addr", addr),
		slog.String("journal_base_url", cfg.Journal.BaseURL),
		slog.String("documents_dir", cfg.Cache.DocumentsDir),
		slog.String("preferences_backend", cfg.Preferences.Backend),
		slog.Bool("viewer_available", viewer.New().Available()),
	)

	if err := app.Listen(addr); err != nil {
		fatal(log, "failed to start server", err)
	}
}

// openDatabase connects to PostgreSQL and ensures the preferences table exists.
func openDatabase(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := migration.EnsureMigrated(ctx, db, time.Local, cfg.Database.Host); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, slog.String("error", err.Error()))
	os.Exit(1)
}
