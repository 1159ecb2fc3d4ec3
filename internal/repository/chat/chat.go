package chat

import (
	"context"
	"fmt"

	"food-delivery/internal/entities"
	"food-delivery/internal/repository"
	"food-delivery/internal/service/chat"

	sq "github.com/Masterminds/squirrel"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, msg entities.ChatMessageCreate) (*entities.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (booking_id, sender_id, receiver_id, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, booking_id, sender_id, receiver_id, message, is_read, created_at`

	var model ChatMessageDB
	err := r.querier.QueryRow(ctx, query, msg.BookingID, msg.SenderID, msg.ReceiverID, msg.Message).Scan(
		&model.ID,
		&model.BookingID,
		&model.SenderID,
		&model.ReceiverID,
		&model.Message,
		&model.IsRead,
		&model.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, chat.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected chat repository create error: %w", err)
	}
	return ToDomain(&model), nil
}

// ListByBooking возвращает историю переписки по заказу, старые сообщения первыми.
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]entities.ChatMessage, error) {
	query := `
		SELECT m.id, m.booking_id, m.sender_id, m.receiver_id,
			COALESCE(NULLIF(TRIM(u.first_name || ' ' || u.last_name), ''), u.mobile_number),
			m.message, m.is_read, m.created_at
		FROM chat_messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.booking_id = $1
		ORDER BY m.created_at, m.id`

	rows, err := r.querier.Query(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository list error: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.ChatMessage, 0, 32)
	for rows.Next() {
		var model ChatMessageDB
		err := rows.Scan(
			&model.ID,
			&model.BookingID,
			&model.SenderID,
			&model.ReceiverID,
			&model.SenderName,
			&model.Message,
			&model.IsRead,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected chat repository list error: %w", err)
		}
		messages = append(messages, *ToDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected chat repository list error: %w", err)
	}
	return messages, nil
}

// MarkRead помечает прочитанными сообщения заказа, адресованные receiverID.
func (r *Repository) MarkRead(ctx context.Context, bookingID, receiverID int64) (int64, error) {
	query := `
		UPDATE chat_messages
		SET is_read = TRUE
		WHERE booking_id = $1 AND receiver_id = $2 AND NOT is_read`

	result, err := r.querier.Exec(ctx, query, bookingID, receiverID)
	if err != nil {
		return 0, fmt.Errorf("unexpected chat repository mark read error: %w", err)
	}
	return result.RowsAffected(), nil
}

// CountUnread считает непрочитанные сообщения пользователя. bookingID = nil - по всем заказам.
func (r *Repository) CountUnread(ctx context.Context, receiverID int64, bookingID *int64) (int64, error) {
	builder := repository.QB.
		Select("COUNT(*)").
		From("chat_messages").
		Where(sq.Eq{"receiver_id": receiverID, "is_read": false})
	if bookingID != nil {
		builder = builder.Where(sq.Eq{"booking_id": *bookingID})
	}

	var count int64
	if err := r.querier.QueryRowBuilder(ctx, builder).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected chat repository count unread error: %w", err)
	}
	return count, nil
}
