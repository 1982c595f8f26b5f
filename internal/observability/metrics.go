// Package observability exposes Prometheus metrics for roster operations.
package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"mergingtonactivities/internal/domain"
)

// Operation labels.
const (
	OpSignup     = "signup"
	OpUnregister = "unregister"
)

var (
	rosterOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mergington_activities",
		Subsystem: "roster",
		Name:      "operations_total",
		Help:      "Signup and unregister attempts, labeled by operation and outcome.",
	}, []string{"operation", "outcome"})

	notificationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mergington_activities",
		Subsystem: "email",
		Name:      "notification_failures_total",
		Help:      "Signup or unregister notices that could not be sent.",
	})
)

func init() {
	prometheus.MustRegister(rosterOps, notificationFailures)
}

// Outcome maps the result of a roster operation to a metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

// RecordRosterOp counts one signup or unregister attempt.
func RecordRosterOp(operation string, err error) {
	rosterOps.WithLabelValues(operation, Outcome(err)).Inc()
}

// RecordNotificationFailure counts an email notice that failed to send.
func RecordNotificationFailure() {
	notificationFailures.Inc()
}
