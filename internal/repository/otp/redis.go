package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"food-delivery/internal/entities"
	"food-delivery/pkg/retrier"
	"food-delivery/pkg/retrier/backoff_adapter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

const (
	txMaxRetries      = 10
	txInitialInterval = 5 * time.Millisecond
	txMaxInterval     = 100 * time.Millisecond
)

var txConflicts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "otp_store_tx_conflicts_total",
	Help: "Total number of optimistic transaction conflicts in the redis OTP store",
})

// RedisStore хранит состояние OTP в трех независимо истекающих ключах.
// Изменения выполняются оптимистичной транзакцией WATCH/MULTI/EXEC.
type RedisStore struct {
	client  redis.UniversalClient
	retrier retrier.Retrier
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: client,
		retrier: backoff_adapter.New(retrier.Config{
			InitialInterval: txInitialInterval,
			MaxInterval:     txMaxInterval,
			MaxElapsedTime:  time.Second,
			Randomization:   0.5,
			Multiplier:      2,
			MaxRetries:      txMaxRetries,
			ShouldRetry: func(err error) bool {
				return errors.Is(err, redis.TxFailedErr)
			},
			Notify: func(error, time.Duration) {
				txConflicts.Inc()
			},
		}),
	}
}

func (s *RedisStore) Load(ctx context.Context, mobile string) (entities.OTPState, error) {
	state, err := readState(ctx, s.client, keysFor(mobile))
	if err != nil {
		return entities.OTPState{}, fmt.Errorf("redis otp store load: %w", err)
	}
	return state, nil
}

func (s *RedisStore) Update(ctx context.Context, mobile string, fn func(entities.OTPState) entities.OTPMutation) error {
	k := keysFor(mobile)

	txf := func(tx *redis.Tx) error {
		state, err := readState(ctx, tx, k)
		if err != nil {
			return err
		}

		mutation := fn(state)
		if isEmpty(mutation) {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			apply(ctx, pipe, k, mutation)
			return nil
		})
		return err
	}

	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.client.Watch(ctx, txf, k.all()...)
	})
	if err != nil {
		return fmt.Errorf("redis otp store update: %w", err)
	}
	return nil
}

// stateReader - общее подмножество команд *redis.Client и *redis.Tx.
type stateReader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	PTTL(ctx context.Context, key string) *redis.DurationCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

func readState(ctx context.Context, c stateReader, k keys) (entities.OTPState, error) {
	var state entities.OTPState

	code, err := c.Get(ctx, k.code).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return state, err
	default:
		ttl, err := c.PTTL(ctx, k.code).Result()
		if err != nil {
			return state, err
		}
		// ключ мог истечь между GET и PTTL
		if ttl > 0 {
			state.Code = code
			state.CodeTTL = ttl
		}
	}

	attempts, err := c.Get(ctx, k.attempts).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return state, err
	}
	state.Attempts = attempts

	verified, err := c.Exists(ctx, k.verified).Result()
	if err != nil {
		return state, err
	}
	state.Verified = verified > 0

	return state, nil
}

func apply(ctx context.Context, pipe redis.Pipeliner, k keys, m entities.OTPMutation) {
	switch {
	case m.SetCode != nil:
		pipe.Set(ctx, k.code, m.SetCode.Code, m.SetCode.TTL)
	case m.DeleteCode:
		pipe.Del(ctx, k.code)
	}

	switch {
	case m.SetAttempts != nil:
		pipe.Set(ctx, k.attempts, m.SetAttempts.Value, m.SetAttempts.TTL)
	case m.DeleteAttempts:
		pipe.Del(ctx, k.attempts)
	}

	switch {
	case m.SetVerified != nil:
		pipe.Set(ctx, k.verified, "1", *m.SetVerified)
	case m.DeleteVerified:
		pipe.Del(ctx, k.verified)
	}
}

func isEmpty(m entities.OTPMutation) bool {
	return m.SetCode == nil && !m.DeleteCode &&
		m.SetAttempts == nil && !m.DeleteAttempts &&
		m.SetVerified == nil && !m.DeleteVerified
}
