//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_otp_verify_post_test
package auth_otp_verify_post

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
	VerifyOTP(ctx context.Context, input entities.MobileInput, code string) (string, error)
}
