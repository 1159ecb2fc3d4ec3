package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"food-delivery/internal/entities"
	"food-delivery/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

const channelPrefix = "chat:booking:"

type relayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}

type localPublisher interface {
	Publish(ctx context.Context, event entities.ChatEvent) error
}

// envelope - формат сообщения в канале Redis; BookingID у ChatEvent не сериализуется.
type envelope struct {
	BookingID int64              `json:"booking_id"`
	Event     entities.ChatEvent `json:"event"`
}

// RedisRelay доставляет события чата всем репликам сервиса через Redis Pub/Sub.
// Публикация идет только в Redis, локальная рассылка выполняется при получении.
type RedisRelay struct {
	client *goredis.Client
	local  localPublisher
	log    relayLogger
}

func NewRedisRelay(client *goredis.Client, local localPublisher, log relayLogger) *RedisRelay {
	return &RedisRelay{
		client: client,
		local:  local,
		log:    log,
	}
}

func channel(bookingID int64) string {
	return channelPrefix + strconv.FormatInt(bookingID, 10)
}

func (r *RedisRelay) Publish(ctx context.Context, event entities.ChatEvent) error {
	payload, err := json.Marshal(envelope{BookingID: event.BookingID, Event: event})
	if err != nil {
		return fmt.Errorf("marshal chat event: %w", err)
	}

	if err := r.client.Publish(ctx, channel(event.BookingID), payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Run слушает каналы чата до отмены контекста. ready закрывается после подтверждения подписки.
func (r *RedisRelay) Run(ctx context.Context, ready chan<- struct{}) error {
	pubsub := r.client.PSubscribe(ctx, channelPrefix+"*")
	defer func() {
		if err := pubsub.Close(); err != nil {
			r.log.Warn("close redis pubsub", logger.NewField("error", err))
		}
	}()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("redis psubscribe: %w", err)
	}
	if ready != nil {
		close(ready)
	}
	r.log.Info("chat relay subscribed", logger.NewField("pattern", channelPrefix+"*"))

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			r.deliver(ctx, msg)
		}
	}
}

func (r *RedisRelay) deliver(ctx context.Context, msg *goredis.Message) {
	var env envelope
	if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
		r.log.Warn("chat relay received bad message",
			logger.NewField("channel", msg.Channel),
			logger.NewField("error", err),
		)
		return
	}

	if !strings.HasSuffix(msg.Channel, ":"+strconv.FormatInt(env.BookingID, 10)) {
		r.log.Warn("chat relay channel mismatch",
			logger.NewField("channel", msg.Channel),
			logger.NewField("booking_id", env.BookingID),
		)
		return
	}

	event := env.Event
	event.BookingID = env.BookingID
	if err := r.local.Publish(ctx, event); err != nil {
		r.log.Warn("chat relay local publish", logger.NewField("error", err))
	}
}
