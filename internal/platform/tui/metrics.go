package tui

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/darkpath/internal/world"
)

const metricsNamespace = "darkpath"

// Metrics holds the Prometheus collectors of the SSH server.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	sessionsActive  prometheus.Gauge
	sessionsTotal   prometheus.Counter
	levelsGenerated prometheus.Counter
	pickupsConsumed prometheus.Counter
	portalJumps     prometheus.Counter
}

// NewMetrics creates the collectors in a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "sessions_active",
			Help:      "Number of connected SSH sessions.",
		}),
		sessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sessions_total",
			Help:      "Total number of SSH sessions started.",
		}),
		levelsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "levels_generated_total",
			Help:      "Levels generated by portal jumps and pickups.",
		}),
		pickupsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "pickups_consumed_total",
			Help:      "Pickups consumed.",
		}),
		portalJumps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "portal_jumps_total",
			Help:      "Portals taken.",
		}),
	}
	m.registry.MustRegister(
		m.sessionsActive,
		m.sessionsTotal,
		m.levelsGenerated,
		m.pickupsConsumed,
		m.portalJumps,
	)
	return m
}

// Observe records an interaction event.
func (m *Metrics) Observe(ev world.Event) {
	if m == nil {
		return
	}
	switch ev.Kind {
	case world.EventPortal:
		m.portalJumps.Inc()
	case world.EventPickup:
		m.pickupsConsumed.Inc()
	}
	if ev.Generated > 0 {
		m.levelsGenerated.Add(float64(ev.Generated))
	}
}

// SessionStarted records a new session.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsTotal.Inc()
	m.sessionsActive.Inc()
}

// SessionEnded records a closed session.
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartHTTP serves /metrics on addr in a separate goroutine.
// The returned server is closed by the caller on shutdown.
func (m *Metrics) StartHTTP(addr string, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
	return srv
}
