//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bookings_post_test
package bookings_post

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
	Create(ctx context.Context, actor entities.Actor, bookingCreate entities.BookingCreate) (*entities.Booking, error)
}
