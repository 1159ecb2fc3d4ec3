//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bookings_get_test
package bookings_get

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
	List(ctx context.Context, actor entities.Actor, query entities.BookingQuery) (*entities.BookingPage, error)
}
