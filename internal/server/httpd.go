// Package server runs the classifier HTTP service lifecycle.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nyayasetu/classifier/internal/bootstrap"
	"github.com/nyayasetu/classifier/internal/logging"
)

// Run starts the HTTP service and blocks until a shutdown signal arrives or
// the server fails.
func Run() error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting classifier HTTP server",
		logging.String("version", cfg.Service.Version),
		logging.String("address", cfg.Server.Address()),
		logging.Bool("debug", cfg.Service.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := bootstrap.NewHTTPComponents(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build components: %w", err)
	}
	defer func() { _ = components.DB.Close() }()

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- components.Server.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.HTTPShutdownTimeout())
	defer cancel()

	if err := components.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
