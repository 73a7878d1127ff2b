package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "ordernest"
	subsystem = "orders"
)

// Metrics holds the order service counters. A nil *Metrics is valid and
// records nothing, so tests can pass it around freely.
type Metrics struct {
	ordersCreated     prometheus.Counter
	paymentsInitiated prometheus.Counter
	pricingBackfills  prometheus.Counter
	gatewayFailures   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ordersCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "created_total",
			Help:      "Number of orders created.",
		}),
		paymentsInitiated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "payments_initiated_total",
			Help:      "Number of payment initiations accepted by the payment service.",
		}),
		pricingBackfills: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pricing_backfills_total",
			Help:      "Number of lazy pricing backfills persisted on read paths.",
		}),
		gatewayFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "gateway_failures_total",
			Help:      "Number of failed downstream gateway calls.",
		}, []string{"gateway"}),
	}
}

func (m *Metrics) OrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

func (m *Metrics) PaymentInitiated() {
	if m == nil {
		return
	}
	m.paymentsInitiated.Inc()
}

func (m *Metrics) PricingBackfilled() {
	if m == nil {
		return
	}
	m.pricingBackfills.Inc()
}

func (m *Metrics) GatewayFailure(gateway string) {
	if m == nil {
		return
	}
	m.gatewayFailures.WithLabelValues(gateway).Inc()
}
