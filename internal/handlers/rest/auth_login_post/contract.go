//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_login_post_test
package auth_login_post

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
	Login(ctx context.Context, req entities.LoginRequest) (*entities.Session, error)
}
