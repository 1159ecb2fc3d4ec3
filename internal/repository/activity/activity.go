package activity

import (
	"context"
	"fmt"
	"time"

	"food-delivery/internal/entities"
	"food-delivery/internal/repository"
)

type ActivityDB struct {
	ID          int64
	UserID      *int64
	Action      string
	Description string
	IPAddress   string
	UserAgent   string
	CreatedAt   time.Time
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, activity entities.Activity) error {
	query := `
		INSERT INTO activity_logs (user_id, action, description, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(
		ctx,
		query,
		activity.UserID,
		activity.Action.String(),
		activity.Description,
		activity.IPAddress,
		activity.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("unexpected activity repository create error: %w", err)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, limit uint64) ([]entities.Activity, error) {
	query := `
		SELECT id, user_id, action, description, ip_address, user_agent, created_at
		FROM activity_logs
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected activity repository list error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.Activity, 0, limit)
	for rows.Next() {
		var model ActivityDB
		err := rows.Scan(
			&model.ID,
			&model.UserID,
			&model.Action,
			&model.Description,
			&model.IPAddress,
			&model.UserAgent,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected activity repository list error: %w", err)
		}
		result = append(result, entities.Activity{
			ID:          model.ID,
			UserID:      model.UserID,
			Action:      entities.ActivityAction(model.Action),
			Description: model.Description,
			IPAddress:   model.IPAddress,
			UserAgent:   model.UserAgent,
			CreatedAt:   model.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected activity repository list error: %w", err)
	}
	return result, nil
}
