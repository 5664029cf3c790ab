package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	IngestTotal   *prometheus.CounterVec
	RenderTotal   *prometheus.CounterVec
	SnapshotItems prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics registers the coupon service collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		IngestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coupon_ingest_requests_total",
				Help: "Ingestion calls by result",
			},
			[]string{"result"},
		),
		RenderTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coupon_render_total",
				Help: "Table renders by produced state",
			},
			[]string{"state"},
		),
		SnapshotItems: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "coupon_snapshot_items",
				Help: "Items in the last stored snapshot",
			},
		),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(m.IngestTotal, m.RenderTotal, m.SnapshotItems)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
