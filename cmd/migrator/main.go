package main

import (
	"flag"
	"log/slog"
	"os"

	"link-shortener/internal/config"
	"link-shortener/internal/lib/logger/slogcute"
	"link-shortener/internal/storage/migrator"
)

func main() {
	var direction string

	// registered before MustLoad, which parses the command line
	flag.StringVar(&direction, "direction", migrator.DirectionUp, "Direction to migrate (up or down)")
	cfg := config.MustLoad()

	log := setupLogger()

	dsn := cfg.Storage.Path
	if cfg.Storage.Driver == config.DriverPostgres {
		dsn = cfg.Storage.DSN
	}

	log.Info("starting migrator",
		slog.String("env", cfg.Env),
		slog.String("driver", cfg.Storage.Driver),
		slog.String("migration_table", cfg.Migrations.MigrationTable),
		slog.String("direction", direction),
	)

	if err := migrator.Run(log, cfg.Storage.Driver, dsn, cfg.Migrations.MigrationTable, direction); err != nil {
		log.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("migrations completed successfully")
}

func setupLogger() *slog.Logger {
	opts := slogcute.CuteHandlerOptions{
		SlogOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewCuteHandler(os.Stdout)

	return slog.New(handler)
}
