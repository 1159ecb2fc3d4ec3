//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partners_get_test
package partners_get

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
	Partners(ctx context.Context, actor entities.Actor) ([]entities.User, error)
}
