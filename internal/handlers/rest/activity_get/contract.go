//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=activity_get_test
package activity_get

import (
	"context"

	"food-delivery/internal/entities"
	"food-delivery/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Recent(ctx context.Context, userID int64) ([]entities.Activity, error)
}
