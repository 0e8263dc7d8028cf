package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/phonebook/internal/config"
	"github.com/forgo/phonebook/internal/database"
	"github.com/forgo/phonebook/internal/handler"
	"github.com/forgo/phonebook/internal/jobs"
	"github.com/forgo/phonebook/internal/metrics"
	"github.com/forgo/phonebook/internal/middleware"
	"github.com/forgo/phonebook/internal/migrations"
	"github.com/forgo/phonebook/internal/repository"
	"github.com/forgo/phonebook/internal/service"
)

// personStore is what the server needs from a persistence backend
type personStore interface {
	service.PersonRepository
	handler.Pinger
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize persistence backend
	store, closeStore, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to initialize backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	// Initialize services
	phonebookService := service.NewPhonebookService(service.PhonebookServiceConfig{
		PersonRepo: store,
	})

	// Initialize handlers
	personHandler := handler.NewPersonHandler(phonebookService)
	healthHandler := handler.NewHealthHandler(store)

	// Setup routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Phonebook endpoints
	personHandler.RegisterRoutes(mux)

	// Frontend build and unknown endpoints
	mux.Handle("/", handler.NewFallbackHandler(cfg.Server.StaticDir))

	var routes http.Handler = mux

	// Metrics
	if cfg.Metrics.Enabled {
		appMetrics := metrics.New()
		mux.Handle("GET /metrics", appMetrics.Handler())
		routes = appMetrics.Middleware(mux)

		sampler := jobs.NewPhonebookSampler(store, appMetrics, cfg.Metrics.SampleInterval)
		sampler.Start()
		defer sampler.Stop()
	}

	// Apply global middleware
	wrapped := middleware.Chain(
		routes,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.String("driver", cfg.Database.Driver),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

// openStore builds the configured backend. A SurrealDB that cannot be reached
// at startup is logged and left unconnected; requests then fail with 500
// until the process is restarted.
func openStore(cfg *config.Config) (personStore, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		repo, err := repository.NewMemoryPersonRepository()
		if err != nil {
			return nil, nil, err
		}
		slog.Warn("using in-memory backend; data is lost on restart")
		return repo, func() {}, nil

	default:
		db := database.NewSurrealDB(database.Config{
			Host:      cfg.Database.Host,
			Port:      cfg.Database.Port,
			User:      cfg.Database.User,
			Password:  cfg.Database.Password,
			Namespace: cfg.Database.Namespace,
			Database:  cfg.Database.Database,
		})
		closeDB := func() { _ = db.Close() }

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := db.Connect(ctx); err != nil {
			slog.Error("error connecting to database", slog.String("error", err.Error()))
			return repository.NewPersonRepository(db), closeDB, nil
		}

		slog.Info("connected to database",
			slog.String("host", cfg.Database.Host),
			slog.String("namespace", cfg.Database.Namespace),
			slog.String("database", cfg.Database.Database),
		)

		if cfg.Database.AutoMigrate {
			if err := database.Migrate(ctx, db, migrations.FS); err != nil {
				closeDB()
				return nil, nil, err
			}
		}

		return repository.NewPersonRepository(db), closeDB, nil
	}
}
