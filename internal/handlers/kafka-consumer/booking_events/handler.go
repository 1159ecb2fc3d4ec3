package booking_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"food-delivery/internal/entities"
	bookingservice "food-delivery/internal/service/booking"
	notificationservice "food-delivery/internal/service/notification"
	"food-delivery/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("booking.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("booking.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Сообщение не коммитится в этом случае и будет перечитано.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.BookingEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("booking.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.ID),
		logger.NewField("event_type", event.Type.String()),
		logger.NewField("booking", event.BookingID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("booking.events processing")

	sent, err := h.notificationService.Notify(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notificationservice.ErrUnknownEventType):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.events handler unknown event type")

		case errors.Is(err, bookingservice.ErrBookingNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.events handler booking not found")

		default:
			// SMS не повторяем: часть получателей уже могла получить сообщение
			msgLog.With(
				logger.NewField("error", err),
				logger.NewField("sent", len(sent)),
			).Warn("booking.events handler failed to notify")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("sent", len(sent)),
	).Info("booking.events: processed")

	sess.MarkMessage(message, "")
	return false
}
