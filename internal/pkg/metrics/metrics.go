package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store labels
const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// Outcome labels
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the collectors for store traffic and the integrity guard.
type Metrics struct {
	registry        *prometheus.Registry
	storeOperations *prometheus.CounterVec
	storeDuration   *prometheus.HistogramVec
	lecturerDeletes *prometheus.CounterVec
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		storeOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "records_store_operations_total",
			Help: "Store operations by store, operation and outcome.",
		}, []string{"store", "operation", "outcome"}),
		storeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "records_store_operation_duration_seconds",
			Help:    "Store operation latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"store", "operation"}),
		lecturerDeletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "records_lecturer_delete_total",
			Help: "Lecturer delete attempts by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.storeOperations, m.storeDuration, m.lecturerDeletes)
	return m
}

// ObserveStore records one store operation. Safe on a nil receiver.
func (m *Metrics) ObserveStore(store, operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.storeOperations.WithLabelValues(store, operation, outcome).Inc()
	m.storeDuration.WithLabelValues(store, operation).Observe(time.Since(started).Seconds())
}

// IncLecturerDelete counts a lecturer delete attempt. Safe on a nil receiver.
func (m *Metrics) IncLecturerDelete(outcome string) {
	if m == nil {
		return
	}
	m.lecturerDeletes.WithLabelValues(outcome).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
