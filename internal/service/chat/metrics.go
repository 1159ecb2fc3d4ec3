package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var messagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "chat_messages_total",
		Help: "Total number of persisted chat messages",
	},
)
