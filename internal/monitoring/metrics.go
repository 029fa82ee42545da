package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	VerificationsTotal *prometheus.CounterVec
	ErrorsTotal        *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		VerificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "truthguard_verifications_total",
			Help: "The total number of verification requests by final label",
		}, []string{"label"}),
		ErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "truthguard_errors_total",
			Help: "The total number of soft failures encountered",
		}, []string{"type"}), // e.g., 'extract_failed', 'db_save_failed'
	}
}

func (m *Metrics) IncVerificationsTotal(label string) {
	m.VerificationsTotal.WithLabelValues(label).Inc()
}

func (m *Metrics) IncErrorsTotal(errorType string) {
	m.ErrorsTotal.WithLabelValues(errorType).Inc()
}
