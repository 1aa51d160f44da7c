package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"varnix-dashboard/config"
	"varnix-dashboard/config/setup"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.AppConfig
	logger := slog.Default()

	db, err := setup.InitDatabase(cfg.DBPath, logger)
	if err != nil {
		return err
	}

	application := setup.InitApp(db, cfg, logger)

	fiberApp := setup.NewFiberApp(cfg.Env, logger)
	setup.ApplyMiddleware(fiberApp, cfg.CORSOrigins, logger)
	setup.RegisterRoutes(fiberApp, application)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		setup.Shutdown(application, db, logger)
		return err
	case <-quit:
	}

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	setup.Shutdown(application, db, logger)
	logger.Info("server stopped")
	return nil
}
