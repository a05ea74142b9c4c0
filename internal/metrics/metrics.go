package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReservationsTotal counts reservation attempts by outcome
	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_app_reservations_total",
			Help: "Total number of reservation attempts",
		},
		[]string{"status"},
	)

	// CapacityExceededTotal counts reservations rejected for lack of places
	CapacityExceededTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_app_capacity_exceeded_total",
			Help: "Total number of reservations rejected because the event was full",
		},
	)

	// PaymentsConfirmedTotal counts successful payment confirmations
	PaymentsConfirmedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_app_payments_confirmed_total",
			Help: "Total number of payment confirmations",
		},
	)

	// TicketValidationsTotal counts door validations by outcome
	TicketValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_app_ticket_validations_total",
			Help: "Total number of door validation attempts",
		},
		[]string{"status"},
	)

	// CancellationsTotal counts cancelled subscriptions
	CancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_app_cancellations_total",
			Help: "Total number of cancelled subscriptions",
		},
	)

	// ReservationDuration observes end to end reservation latency
	ReservationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "event_app_reservation_duration_seconds",
			Help:    "Reservation processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
