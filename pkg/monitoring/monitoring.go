package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reservationsConfirmed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservations_confirmed_total",
			Help: "Confirmed reservations per tenant and payment path",
		},
		[]string{"tenant", "payment"},
	)

	reservationsCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservations_cancelled_total",
			Help: "Cancelled reservations per tenant",
		},
		[]string{"tenant"},
	)

	checkoutSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Checkout session creations per tenant and outcome",
		},
		[]string{"tenant", "status"},
	)
)

func RecordReservationConfirmed(tenant, payment string) {
	reservationsConfirmed.WithLabelValues(tenant, payment).Inc()
}

func RecordReservationCancelled(tenant string) {
	reservationsCancelled.WithLabelValues(tenant).Inc()
}

func RecordCheckoutSession(tenant, status string) {
	checkoutSessions.WithLabelValues(tenant, status).Inc()
}
