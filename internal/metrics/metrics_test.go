package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.CacheHit()
	m.CacheHit()
	m.CacheMiss()
	m.Swept(3)
	m.Swept(0)
	m.Discovered(2)
	m.DiscoveryFailed()
	m.UpstreamFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheMisses))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sweptEntries))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.discoveredPlayers))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.discoveryFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamFailures))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CacheHit()
		m.CacheMiss()
		m.Swept(1)
		m.UpstreamFailure()
		m.Discovered(1)
		m.DiscoveryFailed()
	})
}

func TestRegisterCacheSize(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterCacheSize(reg, func() int { return 7 })

	n, err := testutil.GatherAndCount(reg, "livegame_cache_entries")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
