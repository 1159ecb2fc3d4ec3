package sms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"food-delivery/internal/entities"
	"food-delivery/internal/pkg/config"
	"food-delivery/pkg/retrier"
	"food-delivery/pkg/retrier/backoff_adapter"

	"github.com/twilio/twilio-go"
	twilioClient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const providerTwilio = "twilio"

type TwilioGateway struct {
	client  client
	retrier sendRetrier
	from    string
}

func NewTwilio(cfg *config.SMS) *TwilioGateway {
	restClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return NewTwilioWithClient(restClient.Api, cfg.TwilioFromNumber, retrier.Config{
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		MaxElapsedTime:  5 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      3,
		ShouldRetry:     isRetryable,
	})
}

func NewTwilioWithClient(c client, from string, retrierConfig retrier.Config) *TwilioGateway {
	return &TwilioGateway{
		client:  c,
		retrier: backoff_adapter.New(retrierConfig),
		from:    from,
	}
}

func (g *TwilioGateway) Send(ctx context.Context, n entities.Notification) error {
	if strings.TrimSpace(n.Mobile) == "" {
		return ErrEmptyRecipient
	}
	if strings.TrimSpace(n.Text) == "" {
		return ErrEmptyText
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(g.from)
	params.SetTo(n.Mobile)
	params.SetBody(n.Text)

	err := g.executeWithMetrics(ctx, func(context.Context) error {
		_, err := g.client.CreateMessage(params)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway sms, send to %s: %w", n.Mobile, err)
	}
	return nil
}

// twilio-go не принимает контекст, поэтому отмена учитывается только между попытками.
func (g *TwilioGateway) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := resultLabel(err)
	SMSRequestDuration.WithLabelValues(providerTwilio, result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		SMSRetriesTotal.WithLabelValues(providerTwilio, result).Inc()
	}

	return err
}

func isRetryable(err error) bool {
	var restErr *twilioClient.TwilioRestError
	if !errors.As(err, &restErr) {
		// сетевые ошибки транспорта
		return true
	}
	return restErr.Status == http.StatusTooManyRequests || restErr.Status >= http.StatusInternalServerError
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var restErr *twilioClient.TwilioRestError
	if errors.As(err, &restErr) {
		return fmt.Sprintf("http_%d", restErr.Status)
	}
	return "error"
}
