package database

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sensor_api_query_duration_seconds",
		Help:    "Duration of queries against sensor_readings.",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
	}, []string{"query"})
	queryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sensor_api_query_errors_total",
		Help: "Total number of failed queries against sensor_readings.",
	}, []string{"query"})
)
