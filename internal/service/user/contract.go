//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"food-delivery/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	List(ctx context.Context, filter entities.UserFilter) ([]entities.User, int64, error)
	ListActivePartners(ctx context.Context) ([]entities.User, error)
}

type BookingRepository interface {
	List(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, int64, error)
}

type ActivityRecorder interface {
	Record(ctx context.Context, userID int64, action entities.ActivityAction, description string)
}
