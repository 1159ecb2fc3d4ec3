//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_status_post_test
package booking_status_post

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
	AdvanceStatus(ctx context.Context, actor entities.Actor, bookingID int64, target entities.BookingStatus, notes string) (*entities.Booking, error)
}
