package postgres

import (
	"context"
	"errors"
	"fmt"

	"food-delivery/migrations"
	"food-delivery/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate применяет все встроенные миграции goose поверх пула pgx.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return err
	}
	defer closeDB()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, res := range results {
		log.Info("migration applied",
			logger.NewField("version", res.Source.Version),
			logger.NewField("path", res.Source.Path),
			logger.NewField("duration", res.Duration),
		)
	}
	if len(results) == 0 {
		log.Info("database schema is up to date")
	}
	return nil
}

// Rollback откатывает последнюю примененную миграцию.
func Rollback(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return err
	}
	defer closeDB()

	res, err := provider.Down(ctx)
	if err != nil {
		if errors.Is(err, goose.ErrNoNextVersion) {
			log.Info("nothing to roll back")
			return nil
		}
		return fmt.Errorf("goose down: %w", err)
	}

	log.Info("migration rolled back",
		logger.NewField("version", res.Source.Version),
		logger.NewField("path", res.Source.Path),
	)
	return nil
}

func newProvider(pool *pgxpool.Pool) (*goose.Provider, func(), error) {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose provider: %w", err)
	}

	return provider, func() { _ = db.Close() }, nil
}
