//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_test
package chat

import (
	"context"

	"food-delivery/internal/entities"
	"food-delivery/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, msg entities.ChatMessageCreate) (*entities.ChatMessage, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]entities.ChatMessage, error)
	MarkRead(ctx context.Context, bookingID, receiverID int64) (int64, error)
	CountUnread(ctx context.Context, receiverID int64, bookingID *int64) (int64, error)
}

// BookingReader проверяет доступ пользователя к заказу по сохраненной записи.
type BookingReader interface {
	GetForActor(ctx context.Context, actor entities.Actor, bookingID int64) (*entities.Booking, entities.Capabilities, error)
}

type Broadcaster interface {
	Publish(ctx context.Context, event entities.ChatEvent) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
