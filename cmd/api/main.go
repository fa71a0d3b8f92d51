package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sendsight/sendsight/config"
	"github.com/sendsight/sendsight/internal/app"
	"github.com/sendsight/sendsight/pkg/logger"
)

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

// runServer contains the core server logic, extracted for testability
func runServer(cfg *config.Config, appLogger logger.Logger) error {
	appInstance := app.NewApp(cfg)

	if err := appInstance.Initialize(); err != nil {
		appLogger.WithField("error", err.Error()).Error("Failed to initialize application")
		return err
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverError := make(chan error, 1)
	go func() {
		serverError <- appInstance.Start()
	}()

	select {
	case err := <-serverError:
		if err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err.Error()).Error("Server error")
			return err
		}
		return nil
	case sig := <-shutdown:
		appLogger.WithField("signal", sig.String()).Info("Shutdown signal received - starting graceful shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := appInstance.Shutdown(ctx); err != nil {
			appLogger.WithField("error", err.Error()).Error("Error during graceful shutdown")
			return err
		}

		appLogger.Info("Server shut down gracefully")
		return nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewLogger(cfg.LogLevel)
	appLogger.Info(fmt.Sprintf("Starting delivery tracking server on %s:%d", cfg.Server.Host, cfg.Server.Port))

	if err := runServer(cfg, appLogger); err != nil {
		osExit(1)
	}
}
