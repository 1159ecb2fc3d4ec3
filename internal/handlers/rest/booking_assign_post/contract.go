//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_assign_post_test
package booking_assign_post

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
	Assign(ctx context.Context, actor entities.Actor, bookingID, partnerID int64) (*entities.Booking, error)
}
