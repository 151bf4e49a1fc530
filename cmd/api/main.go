package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/iplt20-stats/internal/app"
	"github.com/riskibarqy/iplt20-stats/internal/config"
	"github.com/riskibarqy/iplt20-stats/internal/observability"
	"github.com/riskibarqy/iplt20-stats/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envFile := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()
	if envFile != "" {
		logger.Info("loaded env file", "path", envFile)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("api stopped with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) error {
	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Warn("pyroscope stop failed", "error", err)
		}
	}()

	pprofSrv := observability.StartPprofServer(cfg, logger)
	defer func() {
		if err := observability.StopPprofServer(pprofSrv, logger, shutdownTimeout); err != nil {
			logger.Warn("pprof shutdown failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := app.NewHTTPServer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Warn("close data source failed", "error", err)
		}
	}()

	if err := srv.Warm(ctx); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "data_source", cfg.DataSource)
		if err := srv.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.HTTP.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
