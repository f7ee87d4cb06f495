package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the activity feed and badge deriver
var (
	activityEventsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_events_recorded_total",
			Help: "Total number of activity events recorded, by kind",
		},
		[]string{"kind"},
	)

	activityMirrorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_mirror_failures_total",
			Help: "Total number of failed durable mirror operations",
		},
		[]string{"op"},
	)

	activityLogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "activity_log_size",
			Help: "Number of events currently retained in memory",
		},
	)

	badgesDerived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "badges_derived_total",
			Help: "Total number of badges handed out, by type",
		},
		[]string{"type"},
	)
)
