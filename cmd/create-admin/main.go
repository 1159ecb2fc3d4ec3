package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"food-delivery/internal/app"
	"food-delivery/internal/entities"
	"food-delivery/internal/pkg/config"
	"food-delivery/internal/pkg/dotenv"
	"food-delivery/internal/pkg/postgres"
	"food-delivery/pkg/logger"
	"food-delivery/pkg/logger/zap_adapter"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/spf13/pflag"
)

const passwordEnv = "ADMIN_PASSWORD"

type options struct {
	email     string
	password  string
	firstName string
	lastName  string
}

func main() {
	if _, err := dotenv.Load(os.Args[1:]); err != nil {
		stdlog.Fatalf("load env file: %v", err)
	}

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		stdlog.Fatalf("%v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(
		zap_adapter.WithLevel(os.Getenv("LOG_LEVEL")),
		zap_adapter.WithDevelopment(true),
	)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var appLogger logger.Logger = zapLogger

	cfg, err := config.Load()
	if err != nil {
		appLogger.Error("load config", logger.NewField("error", err))
		os.Exit(1)
	}

	if err := run(context.Background(), appLogger, cfg, opts); err != nil {
		appLogger.Error("create admin failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	fs := pflag.NewFlagSet("create-admin", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true

	var opts options
	fs.StringVarP(&opts.email, "email", "e", "", "Admin email (login)")
	fs.StringVarP(&opts.password, "password", "p", "", "Admin password, defaults to $"+passwordEnv)
	fs.StringVar(&opts.firstName, "first-name", "Admin", "First name")
	fs.StringVar(&opts.lastName, "last-name", "", "Last name")
	fs.String("env-file", ".env", "Path to the environment file")
	fs.String("port", "", "Ignored")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.password == "" {
		opts.password = os.Getenv(passwordEnv)
	}
	if opts.email == "" || opts.password == "" {
		fs.PrintDefaults()
		return opts, fmt.Errorf("--email and --password (or $%s) are required", passwordEnv)
	}
	return opts, nil
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config, opts options) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	adminApp, err := app.InitializeAdminApp(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	admin, created, err := adminApp.ServiceAuth.EnsureAdmin(ctx, entities.AdminCreate{
		Email:     opts.email,
		Password:  opts.password,
		FirstName: opts.firstName,
		LastName:  opts.lastName,
	})
	if err != nil {
		return err
	}

	action := "password reset"
	if created {
		action = "created"
	}
	log.Info("admin "+action,
		logger.NewField("user_id", admin.ID),
		logger.NewField("email", opts.email),
	)
	return nil
}
