package pending_reminder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var stalePendingBookings = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "bookings_pending_stale",
		Help: "Number of bookings waiting for a delivery partner longer than the reminder threshold",
	},
)
