package infrastructure

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's Prometheus collectors on a private
// registry so tests can create isolated instances.
type Metrics struct {
	Registry *prometheus.Registry

	// DatasetLoads counts cleaning-pipeline runs over fresh raw content;
	// memoized hits do not increment it.
	DatasetLoads prometheus.Counter
	// RecordsKept counts records that survived the record filter.
	RecordsKept prometheus.Counter
	// RecordsDropped counts records removed by the record filter, by reason.
	RecordsDropped *prometheus.CounterVec
	// HTTPRequests counts API requests by route and status code.
	HTTPRequests *prometheus.CounterVec
}

// Drop reason labels for RecordsDropped.
const (
	DropReasonAmount      = "amount"
	DropReasonDate        = "date"
	DropReasonNonPositive = "non_positive"
	DropReasonOutlier     = "outlier"
)

// NewMetrics creates a metrics set on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		DatasetLoads: factory.NewCounter(prometheus.CounterOpts{
			Name: "fundcli_dataset_loads_total",
			Help: "Number of cleaning pipeline runs over fresh raw content.",
		}),
		RecordsKept: factory.NewCounter(prometheus.CounterOpts{
			Name: "fundcli_records_kept_total",
			Help: "Number of records that survived the record filter.",
		}),
		RecordsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fundcli_records_dropped_total",
			Help: "Number of records removed by the record filter, by reason.",
		}, []string{"reason"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fundcli_http_requests_total",
			Help: "Number of API requests by route and status code.",
		}, []string{"route", "status"}),
	}
}

// Handler returns the /metrics endpoint handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
