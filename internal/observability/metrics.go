package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	rosterOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "operations_total",
		Help:      "Roster operations by kind and outcome.",
	}, []string{"operation", "outcome"})
	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(rosterOperations, participantsGauge)
}

// RecordRosterOperation counts one signup or unregister attempt.
func RecordRosterOperation(operation, outcome string) {
	rosterOperations.WithLabelValues(operation, outcome).Inc()
}

// SetParticipantCount updates the roster size gauge for an activity.
func SetParticipantCount(activity string, count int) {
	participantsGauge.WithLabelValues(activity).Set(float64(count))
}
