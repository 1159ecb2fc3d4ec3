package otp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "otp_operations_total",
		Help: "Total number of OTP operations by result",
	},
	[]string{"operation", "result"},
)

func observe(operation string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case isRejection(err):
		result = "rejected"
	default:
		result = "error"
	}
	operationsTotal.WithLabelValues(operation, result).Inc()
}
