// Package main wires together the notesd sample service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mountkit/mountkit/internal/api"
	"github.com/mountkit/mountkit/internal/config"
	"github.com/mountkit/mountkit/internal/logging"
	"github.com/mountkit/mountkit/internal/storage/memory"
	"github.com/mountkit/mountkit/internal/storage/postgres"
	"github.com/mountkit/mountkit/internal/store"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	if err := run(cfg, logger); err != nil {
		logger.Error("service failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	noteStore, cleanup, err := newNoteStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize note store: %w", err)
	}
	defer cleanup()

	server, err := api.NewServer(cfg, noteStore, logger)
	if err != nil {
		return fmt.Errorf("assemble server: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func newNoteStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (store.NoteStore, func(), error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		logger.Info("using postgres note store")
		st, err := postgres.NewNoteStore(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	default:
		logger.Info("using in-memory note store")
		return memory.NewNoteStore(), func() {}, nil
	}
}
