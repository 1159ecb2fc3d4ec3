//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_put_test
package profile_put

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
	UpdateProfile(ctx context.Context, actor entities.Actor, update entities.ProfileUpdate) (*entities.User, error)
}
