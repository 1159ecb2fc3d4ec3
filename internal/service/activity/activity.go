package activity

import (
	"context"
	"fmt"

	"food-delivery/internal/entities"
	"food-delivery/internal/pkg/reqctx"
	"food-delivery/pkg/logger"
)

const recentLimit = 20

// Recorder пишет журнал действий пользователей. Ошибки записи не прерывают основную операцию.
type Recorder struct {
	repository Repository
	log        serviceLogger
}

func New(repository Repository, log serviceLogger) *Recorder {
	return &Recorder{
		repository: repository,
		log:        log,
	}
}

func (r *Recorder) Record(ctx context.Context, userID int64, action entities.ActivityAction, description string) {
	meta := reqctx.Meta(ctx)

	err := r.repository.Create(ctx, entities.Activity{
		UserID:      &userID,
		Action:      action,
		Description: description,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
	})
	if err != nil {
		r.log.Warn("record activity",
			logger.NewField("user_id", userID),
			logger.NewField("action", action.String()),
			logger.NewField("error", err),
		)
	}
}

func (r *Recorder) Recent(ctx context.Context, userID int64) ([]entities.Activity, error) {
	activities, err := r.repository.ListByUser(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return activities, nil
}
