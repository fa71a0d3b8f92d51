package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sendsight/sendsight/config"
	"github.com/sendsight/sendsight/internal/database"
	"github.com/sendsight/sendsight/internal/domain"
	httphandler "github.com/sendsight/sendsight/internal/http"
	"github.com/sendsight/sendsight/internal/repository"
	"github.com/sendsight/sendsight/internal/service"
	"github.com/sendsight/sendsight/pkg/logger"
)

// App wires configuration, storage, services and HTTP handlers together
// and owns the server lifecycle.
type App struct {
	config *config.Config
	logger logger.Logger
	mux    *http.ServeMux
	server *http.Server

	db    *sql.DB
	redis *redis.Client

	eventRepo   domain.DeliveryEventRepository
	counterRepo domain.DeliveryCounterRepository
	contactRepo domain.ContactRepository
	emailRepo   domain.EmailRecordRepository

	tracker         *service.DeliveryTrackerService
	orchestrator    domain.WebhookOrchestrator
	retentionWorker *service.RetentionWorker
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
		logger: logger.NewLogger(cfg.LogLevel),
		mux:    http.NewServeMux(),
	}
}

// InitDB connects to PostgreSQL and ensures the schema exists.
func (a *App) InitDB() error {
	db, err := database.Connect(&a.config.Database, a.config.Environment)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.EnsureSchema(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	a.db = db
	return nil
}

// InitRedis connects to the Redis database holding counters and caches.
func (a *App) InitRedis() error {
	client := database.NewRedisClient(&a.config.Redis)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	a.redis = client
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() {
	a.eventRepo = repository.NewDeliveryEventRepository(a.db)
	a.counterRepo = repository.NewDeliveryCounterRepository(a.redis)
	a.contactRepo = repository.NewContactRepository(a.db)
	a.emailRepo = repository.NewEmailRecordRepository(a.db)
}

// InitServices initializes all services
func (a *App) InitServices() error {
	automation := service.NewAutomationService(a.logger)

	a.tracker = service.NewDeliveryTrackerService(
		a.eventRepo,
		a.counterRepo,
		a.contactRepo,
		automation,
		a.logger,
	)

	orchestrator, err := service.NewWebhookService(a.tracker, a.emailRepo, a.config.Webhooks, a.logger)
	if err != nil {
		return err
	}
	a.orchestrator = orchestrator

	a.retentionWorker = service.NewRetentionWorker(a.tracker, a.config.RetentionDays, a.logger)

	return nil
}

// InitHandlers registers all HTTP handlers on the mux
func (a *App) InitHandlers() {
	webhookHandler := httphandler.NewWebhookHandler(a.orchestrator, a.logger)
	webhookHandler.RegisterRoutes(a.mux)

	analyticsHandler := httphandler.NewAnalyticsHandler(a.tracker, a.logger)
	analyticsHandler.RegisterRoutes(a.mux)

	a.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","version":%q}`, a.config.Version)
	})
}

// Initialize runs all initialization steps in order.
func (a *App) Initialize() error {
	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitRedis(); err != nil {
		return err
	}
	a.InitRepositories()
	if err := a.InitServices(); err != nil {
		return err
	}
	a.InitHandlers()

	return nil
}

// Start begins serving HTTP traffic and starts background workers. It
// blocks until the server stops.
func (a *App) Start() error {
	a.retentionWorker.Start()

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      a.mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	a.logger.WithField("address", addr).
		WithField("environment", a.config.Environment).
		Info("Starting delivery tracking server")

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server and releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down")

	if a.retentionWorker != nil {
		a.retentionWorker.Stop()
	}

	var firstErr error
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// GetMux returns the HTTP mux, mainly for tests.
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetLogger returns the application logger.
func (a *App) GetLogger() logger.Logger {
	return a.logger
}
