//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"food-delivery/internal/entities"
	"food-delivery/pkg/logger"
)

type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (entities.Actor, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
