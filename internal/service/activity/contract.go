//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=activity_test
package activity

import (
	"context"

	"food-delivery/internal/entities"
	"food-delivery/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, activity entities.Activity) error
	ListByUser(ctx context.Context, userID int64, limit uint64) ([]entities.Activity, error)
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
