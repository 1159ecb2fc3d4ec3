//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_events_test
package booking_events

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
	Notify(ctx context.Context, event entities.BookingEvent) ([]entities.Notification, error)
}
