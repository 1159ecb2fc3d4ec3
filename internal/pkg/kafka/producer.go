package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"food-delivery/internal/entities"
	"food-delivery/internal/pkg/config"
	"food-delivery/pkg/logger"

	"github.com/IBM/sarama"
)

const eventTypeHeader = "event_type"

// Producer публикует события жизненного цикла заказа.
// Ключ сообщения - id заказа, поэтому события одного заказа попадают в одну партицию по порядку.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 100 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	// обязательное условие для идемпотентного продюсера
	cfg.Net.MaxOpenRequests = 1

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	brokers := ParseBrokers(cfg.Brokers)

	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return NewProducerWith(kafkaLog, producer, cfg.Topic), nil
}

func NewProducerWith(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

func (p *Producer) Publish(ctx context.Context, event entities.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.BookingID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(eventTypeHeader), Value: []byte(event.Type.String())},
		},
	})
	if err != nil {
		return fmt.Errorf("send booking event %s: %w", event.ID, err)
	}

	p.log.Debug("booking event published",
		logger.NewField("event_id", event.ID),
		logger.NewField("event_type", event.Type.String()),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

// LogPublisher используется, когда брокеры не заданы: события только пишутся в лог.
type LogPublisher struct {
	log logger.Logger
}

func NewLogPublisher(log logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, event entities.BookingEvent) error {
	p.log.Info("booking event (kafka disabled)",
		logger.NewField("event_id", event.ID),
		logger.NewField("event_type", event.Type.String()),
		logger.NewField("booking_id", event.BookingID),
		logger.NewField("status", event.Status.String()),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
