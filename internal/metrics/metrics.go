// Package metrics exposes the service's Prometheus collectors. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "livegame"

// Metrics groups the live game pipeline counters.
type Metrics struct {
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	sweptEntries      prometheus.Counter
	upstreamFailures  prometheus.Counter
	discoveredPlayers prometheus.Counter
	discoveryFailures prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "cache", Name: "hits_total",
			Help: "Live game lookups answered from the cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "cache", Name: "misses_total",
			Help: "Live game lookups not found in the cache.",
		}),
		sweptEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "cache", Name: "swept_entries_total",
			Help: "Expired cache keys removed by the background sweep.",
		}),
		upstreamFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "upstream", Name: "failures_total",
			Help: "Current game fetches that failed and were reported as no live game.",
		}),
		discoveredPlayers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "discovery", Name: "players_total",
			Help: "Previously unknown players inserted into the directory.",
		}),
		discoveryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "discovery", Name: "failures_total",
			Help: "Account lookups that failed during discovery.",
		}),
	}
	reg.MustRegister(
		m.cacheHits, m.cacheMisses, m.sweptEntries,
		m.upstreamFailures, m.discoveredPlayers, m.discoveryFailures,
	)
	return m
}

// RegisterCacheSize registers a gauge reporting the number of cache keys.
func RegisterCacheSize(reg prometheus.Registerer, size func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace, Subsystem: "cache", Name: "entries",
		Help: "Participant keys currently held by the live game cache.",
	}, func() float64 { return float64(size()) }))
}

func (m *Metrics) CacheHit() {
	if m != nil {
		m.cacheHits.Inc()
	}
}

func (m *Metrics) CacheMiss() {
	if m != nil {
		m.cacheMisses.Inc()
	}
}

func (m *Metrics) Swept(n int) {
	if m != nil && n > 0 {
		m.sweptEntries.Add(float64(n))
	}
}

func (m *Metrics) UpstreamFailure() {
	if m != nil {
		m.upstreamFailures.Inc()
	}
}

func (m *Metrics) Discovered(n int) {
	if m != nil && n > 0 {
		m.discoveredPlayers.Add(float64(n))
	}
}

func (m *Metrics) DiscoveryFailed() {
	if m != nil {
		m.discoveryFailures.Inc()
	}
}
