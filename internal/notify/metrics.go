package notify

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts notices by kind as library_notifications_total.
type Metrics struct {
	sent *prometheus.CounterVec
}

// NewMetrics registers the notification counter with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	sent := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "library",
			Name:      "notifications_total",
			Help:      "Notices sent to borrowers, by kind.",
		},
		[]string{"kind"},
	)
	if err := reg.Register(sent); err != nil {
		return nil, err
	}
	return &Metrics{sent: sent}, nil
}

func (m *Metrics) Checkout(context.Context, string, string) {
	m.sent.WithLabelValues(string(KindCheckout)).Inc()
}

func (m *Metrics) Return(context.Context, string, string) {
	m.sent.WithLabelValues(string(KindReturn)).Inc()
}

func (m *Metrics) Overdue(context.Context, string, string, int) {
	m.sent.WithLabelValues(string(KindOverdue)).Inc()
}

// Sent reports the counter vector, for exporters and tests.
func (m *Metrics) Sent() *prometheus.CounterVec {
	return m.sent
}
