//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"
	"time"

	"food-delivery/internal/entities"
	"food-delivery/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, bookingCreate entities.BookingCreate) (*entities.Booking, error)
	GetByID(ctx context.Context, id int64) (*entities.Booking, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Booking, error)
	Update(ctx context.Context, bookingModify entities.BookingModify) (*entities.Booking, error)

	AppendLog(ctx context.Context, logEntry entities.BookingStatusLog) (*entities.BookingStatusLog, error)
	ListLogs(ctx context.Context, bookingID int64) ([]entities.BookingStatusLog, error)

	List(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, int64, error)
	ListPendingSince(ctx context.Context, before time.Time, limit uint64) ([]entities.Booking, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.BookingEvent) error
}

type ActivityRecorder interface {
	Record(ctx context.Context, userID int64, action entities.ActivityAction, description string)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
