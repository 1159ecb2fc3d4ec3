//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reports_get_test
package reports_get

import (
	"context"
	"time"

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
	Report(ctx context.Context, actor entities.Actor, from, to *time.Time) (*entities.Report, error)
}
