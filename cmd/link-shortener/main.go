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

	"link-shortener/internal/config"
	"link-shortener/internal/http-server/handlers/dashboard"
	"link-shortener/internal/http-server/handlers/links/add"
	"link-shortener/internal/http-server/handlers/links/delete"
	"link-shortener/internal/http-server/handlers/links/list"
	"link-shortener/internal/http-server/handlers/redirect"
	"link-shortener/internal/http-server/middleware/auth"
	"link-shortener/internal/http-server/router"
	"link-shortener/internal/lib/logger/slogcute"
	"link-shortener/internal/service/links"
	"link-shortener/internal/storage"
	"link-shortener/internal/storage/instrumented"
	"link-shortener/internal/storage/memory"
	"link-shortener/internal/storage/migrator"
	"link-shortener/internal/storage/postgres"
	"link-shortener/internal/storage/sqlite"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.MustLoad()

	log := SetupLogger(cfg.Env)

	log.Info("starting link shortener", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))

	gate, err := auth.New(cfg.Admin)
	if err != nil {
		log.Error("failed to initialize auth gate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, log, cfg)
	if err != nil {
		log.Error("failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	svc := links.New(log, instrumented.New(store))

	handler := router.New(log, gate, router.Handlers{
		Redirect:  redirect.New(log, svc, cfg.Redirect.FallbackURL),
		Dashboard: dashboard.New(log),
		Add:       add.New(log, svc),
		Delete:    delete.New(log, svc),
		List:      list.New(log, svc),
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	servers := []*http.Server{srv}

	if cfg.Metrics.Address != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		servers = append(servers, &http.Server{
			Addr:        cfg.Metrics.Address,
			Handler:     mux,
			ReadTimeout: cfg.HTTPServer.Timeout,
		})
	}

	errCh := make(chan error, len(servers))
	for _, s := range servers {
		log.Info("starting HTTP server", slog.String("addr", s.Addr))

		go func(s *http.Server) {
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("server %s: %w", s.Addr, err)
			}
		}(s)
	}

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errCh:
		log.Error("HTTP server failed", slog.String("error", err.Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	for _, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to stop server", slog.String("addr", s.Addr), slog.String("error", err.Error()))
		}
	}

	log.Info("server stopped")
}

func openStorage(ctx context.Context, log *slog.Logger, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory storage, links are lost on restart")
		return memory.New(cfg.Storage.PageSize), nil
	case config.DriverSQLite:
		if cfg.Migrations.AutoApply {
			err := migrator.Run(log, migrator.DriverSQLite, cfg.Storage.Path, cfg.Migrations.MigrationTable, migrator.DirectionUp)
			if err != nil {
				return nil, err
			}
		}
		return sqlite.New(cfg.Storage.Path, cfg.Storage.PageSize)
	case config.DriverPostgres:
		if cfg.Migrations.AutoApply {
			err := migrator.Run(log, migrator.DriverPostgres, cfg.Storage.DSN, cfg.Migrations.MigrationTable, migrator.DirectionUp)
			if err != nil {
				return nil, err
			}
		}
		return postgres.New(ctx, cfg.Storage.DSN, cfg.Storage.PageSize)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Storage.Driver)
	}
}

func SetupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = SetupCuteSlog()
	}

	return log
}

func SetupCuteSlog() *slog.Logger {
	opts := slogcute.CuteHandlerOptions{
		SlogOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewCuteHandler(os.Stdout)

	return slog.New(handler)
}
