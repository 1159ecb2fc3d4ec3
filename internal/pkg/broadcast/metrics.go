package broadcast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_connections",
			Help: "Current number of chat subscribers",
		},
	)

	chatDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_slow_consumers_dropped_total",
			Help: "Subscribers dropped because their send buffer was full",
		},
	)
)
