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

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/forgo/users/api/internal/config"
	"github.com/forgo/users/api/internal/handler"
	"github.com/forgo/users/api/internal/jobs"
	"github.com/forgo/users/api/internal/logging"
	"github.com/forgo/users/api/internal/metrics"
	"github.com/forgo/users/api/internal/middleware"
	"github.com/forgo/users/api/internal/repository"
	"github.com/forgo/users/api/internal/service"
	"github.com/forgo/users/api/internal/telemetry"
)

func newServeCmd(opts *rootOptions, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, opts, version)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, opts *rootOptions, version string) error {
	logger, levelVar, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		JSON:   cfg.Logging.JSONFormat,
		Output: os.Stdout,
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:        cfg.Tracing.Enabled,
		Endpoint:       cfg.Tracing.Endpoint,
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: version,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	repo := repository.NewUserRepository()
	if cfg.Seed.SampleData {
		if err := repository.Seed(ctx, repo, repository.SampleUsers, time.Now()); err != nil {
			return fmt.Errorf("failed to seed sample users: %w", err)
		}
		logger.Info("seeded sample users", slog.Int("count", len(repository.SampleUsers)))
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	users := service.NewUserService(service.UserServiceConfig{
		Repo:    repo,
		Logger:  logger,
		Metrics: m,
	})

	router := handler.NewRouter(handler.RouterConfig{
		Users:   users,
		Logger:  logger,
		Metrics: m,
		CORS:    middleware.CORSConfig{Enabled: cfg.CORS.Enabled, Origins: cfg.CORS.Origins},
		Service: cfg.Tracing.ServiceName,
		Version: version,
	})

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       120 * time.Second,
	}

	reporter := jobs.NewUserCountReporter(users, m, logger, cfg.Stats.Interval)
	reporter.Start()
	defer reporter.Stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server",
			slog.String("address", server.Addr),
			slog.String("environment", cfg.Environment),
			slog.String("version", version),
			slog.String("log_level", cfg.Logging.Level),
			slog.Bool("log_json", cfg.Logging.JSONFormat),
		)
		logger.Info("api available", slog.String("url", "http://"+server.Addr+"/api/v1"))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if len(cfg.Files) > 0 {
		watcher, err := config.NewWatcher(cfg.Files, opts.load, func(next *config.Config) {
			level, _ := logging.ParseLevel(next.Logging.Level)
			levelVar.Set(level)
			logger.Info("configuration reloaded", slog.String("log_level", level.String()))
		}, logger)
		if err != nil {
			logger.Warn("config hot reload disabled", slog.String("error", err.Error()))
		} else {
			g.Go(func() error { return watcher.Run(gctx) })
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}
