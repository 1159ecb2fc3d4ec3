package sms

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SMSRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_gateway_retries_total",
			Help: "Total number of retried SMS sends",
		},
		[]string{"provider", "result"},
	)

	SMSRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sms_gateway_request_duration_seconds",
			Help:    "SMS send duration including retries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "result"},
	)
)
