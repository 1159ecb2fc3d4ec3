//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_otp_send_post_test
package auth_otp_send_post

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
	SendOTP(ctx context.Context, input entities.MobileInput, purpose entities.OTPPurpose) (*entities.OTPDispatch, error)
}
