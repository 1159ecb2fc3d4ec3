//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"
	"time"

	"food-delivery/internal/entities"
)

type BookingRepository interface {
	List(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, int64, error)
	Stats(ctx context.Context, filter entities.BookingFilter, todayStart time.Time) (*entities.BookingStats, error)
	TopPartners(ctx context.Context, from, to time.Time, limit uint64) ([]entities.ReportRow, error)
	TopCustomers(ctx context.Context, from, to time.Time, limit uint64) ([]entities.ReportRow, error)
}

type UserRepository interface {
	CountByRole(ctx context.Context) (map[entities.Role]int64, error)
}

type UnreadCounter interface {
	CountUnread(ctx context.Context, receiverID int64, bookingID *int64) (int64, error)
}
