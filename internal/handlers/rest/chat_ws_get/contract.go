//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_ws_get_test
package chat_ws_get

import (
	"context"

	"food-delivery/internal/entities"
	"food-delivery/internal/pkg/broadcast"
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
	Authorize(ctx context.Context, actor entities.Actor, bookingID int64) (*entities.Booking, error)
	Send(ctx context.Context, actor entities.Actor, bookingID int64, text string) (*entities.ChatMessage, error)
}

type Hub interface {
	Subscribe(bookingID int64) *broadcast.Subscriber
	Unsubscribe(s *broadcast.Subscriber)
}
