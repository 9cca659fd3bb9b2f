package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the editor's Prometheus collectors. Each server owns its
// own registry so several can run in one process.
type Metrics struct {
	registry *prometheus.Registry

	TickDuration     prometheus.Histogram
	Tiles            prometheus.Gauge
	TilesCreated     prometheus.Counter
	TilesPainted     prometheus.Counter
	CommandsDrained  *prometheus.CounterVec
	Hosts            prometheus.Gauge
	MessagesRejected *prometheus.CounterVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		TickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hexpaint_tick_duration_seconds",
			Help:    "Time spent running one editor tick",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
		Tiles: f.NewGauge(prometheus.GaugeOpts{
			Name: "hexpaint_tiles",
			Help: "Number of tiles in the map",
		}),
		TilesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "hexpaint_tiles_created_total",
			Help: "Tiles created by painting outside the map",
		}),
		TilesPainted: f.NewCounter(prometheus.CounterOpts{
			Name: "hexpaint_tiles_painted_total",
			Help: "Ticks that painted a tile",
		}),
		CommandsDrained: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hexpaint_commands_drained_total",
			Help: "Host commands applied by the editor",
		}, []string{"queue"}),
		Hosts: f.NewGauge(prometheus.GaugeOpts{
			Name: "hexpaint_hosts",
			Help: "Connected hosts",
		}),
		MessagesRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hexpaint_host_messages_rejected_total",
			Help: "Host messages that were not applied",
		}, []string{"reason"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
