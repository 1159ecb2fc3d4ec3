package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"food-delivery/internal/pkg/config"
	"food-delivery/internal/pkg/dotenv"
	"food-delivery/internal/pkg/postgres"
	"food-delivery/pkg/logger"
	"food-delivery/pkg/logger/zap_adapter"

	"github.com/spf13/pflag"
)

func main() {
	if _, err := dotenv.Load(os.Args[1:]); err != nil {
		stdlog.Fatalf("load env file: %v", err)
	}

	fs := pflag.NewFlagSet("migrate", pflag.ExitOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	down := fs.Bool("down", false, "Roll back the last applied migration")
	fs.String("env-file", ".env", "Path to the environment file")
	_ = fs.Parse(os.Args[1:])

	zapLogger, err := zap_adapter.NewZapAdapter(
		zap_adapter.WithLevel(os.Getenv("LOG_LEVEL")),
		zap_adapter.WithDevelopment(os.Getenv("APP_ENV") != config.EnvProduction),
	)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var appLogger logger.Logger = zapLogger

	dbConfig, err := config.LoadDatabase()
	if err != nil {
		appLogger.Error("load config", logger.NewField("error", err))
		os.Exit(1)
	}

	if err := run(context.Background(), appLogger, dbConfig, *down); err != nil {
		appLogger.Error("migration failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Database, down bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if down {
		return postgres.Rollback(ctx, log, pool)
	}
	return postgres.Migrate(ctx, log, pool)
}
