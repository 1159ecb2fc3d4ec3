//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pending_reminder_test
package pending_reminder

import (
	"context"
	"time"

	"food-delivery/internal/entities"
	"food-delivery/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}

type Service interface {
	PendingOlderThan(ctx context.Context, age time.Duration) ([]entities.Booking, error)
}
