package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry       *prometheus.Registry
	SessionsTotal  prometheus.Counter
	SessionsActive prometheus.Gauge
	StepsTotal     prometheus.Counter
	FramesSent     prometheus.Counter
}

// NewMetrics registers the replay counters on their own registry, so several
// servers can live in one process.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seafloor_sessions_total",
			Help: "Total number of replay sessions started",
		}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seafloor_sessions_active",
			Help: "Replay sessions currently connected",
		}),
		StepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seafloor_steps_total",
			Help: "Total number of simulated steps",
		}),
		FramesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seafloor_frames_sent_total",
			Help: "Total number of messages written to clients",
		}),
	}
	m.registry.MustRegister(m.SessionsTotal, m.SessionsActive, m.StepsTotal, m.FramesSent)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
