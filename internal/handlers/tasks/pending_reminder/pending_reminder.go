package pending_reminder

import (
	"context"
	"time"

	"food-delivery/pkg/logger"
)

// PendingReminder периодически находит заказы без курьера старше threshold
// и напоминает о них администраторам через лог и метрику.
type PendingReminder struct {
	log       taskLogger
	service   Service
	interval  time.Duration
	threshold time.Duration
}

func NewPendingReminder(log taskLogger, service Service, interval, threshold time.Duration) *PendingReminder {
	return &PendingReminder{
		log:       log,
		service:   service,
		interval:  interval,
		threshold: threshold,
	}
}

func (p *PendingReminder) TTL() time.Duration {
	return p.interval
}

func (p *PendingReminder) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	bookings, err := p.service.PendingOlderThan(ctxWithTimeout, p.threshold)
	if err != nil {
		return err
	}

	stalePendingBookings.Set(float64(len(bookings)))
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(bookings))
	oldest := bookings[0].CreatedAt
	for _, b := range bookings {
		ids = append(ids, b.ID)
		if b.CreatedAt.Before(oldest) {
			oldest = b.CreatedAt
		}
	}

	p.log.Warn("bookings waiting for delivery partner",
		logger.NewField("count", len(bookings)),
		logger.NewField("booking_ids", ids),
		logger.NewField("oldest_waiting", time.Since(oldest).Round(time.Second).String()),
		logger.NewField("threshold", p.threshold.String()),
	)
	return nil
}

func (p *PendingReminder) Info() string {
	return "pending booking reminder"
}
