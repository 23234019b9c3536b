// Package main Property Backoffice API Server
//
// @title Property Backoffice API
// @version 1.0
// @description Rent roll, ledgers and income/expense reporting for rental properties
//
// @contact.name API Support
// @contact.email support@example.com
//
// @host localhost:8080
// @BasePath /api
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/api"
	"github.com/shunichi-ikebuchi/property-backoffice/internal/settings"
	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/config"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
)

func main() {
	// Setup structured JSON logging.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate([]string{"server", "port"}, []string{"server", "dbPath"}); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func run(cfg *config.Config) error {
	st, err := store.Open(cfg.Server.DBPath, cfg.Server.UploadDir)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()
	slog.Info("database initialized", "db_path", st.Path(), "upload_dir", cfg.Server.UploadDir)

	defaults := report.DefaultSettings()
	if cfg.Server.ReportDefaultsPath != "" {
		if defaults, err = report.LoadDefaults(cfg.Server.ReportDefaultsPath); err != nil {
			return err
		}
		slog.Info("report defaults loaded", "path", cfg.Server.ReportDefaultsPath)
	}

	rs, err := settings.New(cfg.Server.SettingsDBPath, defaults)
	if err != nil {
		return fmt.Errorf("failed to initialize settings store: %w", err)
	}
	defer func() {
		if err := rs.Close(); err != nil {
			slog.Error("failed to close settings store", "error", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(api.Config{Store: st, Settings: rs}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		slog.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("starting property backoffice API", "addr", addr, "port", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}
