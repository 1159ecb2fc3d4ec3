//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"food-delivery/internal/entities"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Booking, error)
}

type SMSSender interface {
	Send(ctx context.Context, notification entities.Notification) error
}
