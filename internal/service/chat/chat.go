package chat

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"food-delivery/internal/entities"
	"food-delivery/pkg/logger"
)

const maxMessageLength = 2000

type Service struct {
	repository  Repository
	bookings    BookingReader
	broadcaster Broadcaster
	log         serviceLogger
}

func New(repository Repository, bookings BookingReader, broadcaster Broadcaster, log serviceLogger) *Service {
	return &Service{
		repository:  repository,
		bookings:    bookings,
		broadcaster: broadcaster,
		log:         log,
	}
}

// Authorize проверяет право подключиться к комнате заказа.
func (s *Service) Authorize(ctx context.Context, actor entities.Actor, bookingID int64) (*entities.Booking, error) {
	b, _, err := s.bookings.GetForActor(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Send сохраняет сообщение и только после этого рассылает его участникам комнаты.
func (s *Service) Send(ctx context.Context, actor entities.Actor, bookingID int64, text string) (*entities.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > maxMessageLength {
		return nil, ErrMessageTooLong
	}

	b, caps, err := s.bookings.GetForActor(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	if !caps.CanChat {
		return nil, ErrChatClosed
	}

	receiverID, ok := b.Counterpart(actor.UserID)
	if !ok {
		return nil, ErrChatClosed
	}

	msg, err := s.repository.Create(ctx, entities.ChatMessageCreate{
		BookingID:  bookingID,
		SenderID:   actor.UserID,
		ReceiverID: receiverID,
		Message:    text,
	})
	if err != nil {
		return nil, fmt.Errorf("save chat message: %w", err)
	}
	msg.SenderName = actor.Name
	messagesTotal.Inc()

	err = s.broadcaster.Publish(ctx, entities.ChatEvent{
		BookingID:  bookingID,
		MessageID:  msg.ID,
		Message:    msg.Message,
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		Timestamp:  msg.CreatedAt,
	})
	if err != nil {
		s.log.Warn("broadcast chat message",
			logger.NewField("booking_id", bookingID),
			logger.NewField("message_id", msg.ID),
			logger.NewField("error", err),
		)
	}
	return msg, nil
}

// History возвращает переписку старыми сообщениями вперед и помечает входящие прочитанными.
func (s *Service) History(ctx context.Context, actor entities.Actor, bookingID int64) ([]entities.ChatMessage, error) {
	if _, _, err := s.bookings.GetForActor(ctx, actor, bookingID); err != nil {
		return nil, err
	}

	messages, err := s.repository.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}

	if _, err := s.repository.MarkRead(ctx, bookingID, actor.UserID); err != nil {
		return nil, fmt.Errorf("mark chat messages read: %w", err)
	}
	return messages, nil
}

// Unread - число непрочитанных сообщений. bookingID = nil - по всем заказам пользователя.
func (s *Service) Unread(ctx context.Context, actor entities.Actor, bookingID *int64) (int64, error) {
	if bookingID != nil {
		if _, _, err := s.bookings.GetForActor(ctx, actor, *bookingID); err != nil {
			return 0, err
		}
	}

	count, err := s.repository.CountUnread(ctx, actor.UserID, bookingID)
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return count, nil
}
