package sms

import (
	"context"

	"food-delivery/internal/entities"
	"food-delivery/pkg/logger"
)

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
}

// LogGateway пишет сообщения в лог вместо отправки, когда Twilio не настроен.
type LogGateway struct {
	log gatewayLogger
}

func NewLog(log gatewayLogger) *LogGateway {
	return &LogGateway{log: log}
}

func (g *LogGateway) Send(_ context.Context, n entities.Notification) error {
	if n.Mobile == "" {
		return ErrEmptyRecipient
	}
	g.log.Info("sms not sent, provider disabled",
		logger.NewField("to", n.Mobile),
		logger.NewField("text", n.Text),
	)
	return nil
}
