package livegame

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Guliveer/livegame-go/internal/config"
	"github.com/Guliveer/livegame-go/internal/logger"
	"github.com/Guliveer/livegame-go/internal/metrics"
	"github.com/Guliveer/livegame-go/internal/model"
)

// cacheEntry is shared by every participant key of one match, so all of a
// match's keys expire together.
type cacheEntry struct {
	matchID   model.MatchID
	game      *model.LiveGame
	expiresAt time.Time
}

// Cache maps every participant identity of a live match to one shared
// snapshot for a fixed TTL. Expired entries are never returned, whether or
// not the sweep has reclaimed them yet.
type Cache struct {
	mu      sync.RWMutex
	entries map[model.Puuid]*cacheEntry

	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	log     *logger.Logger
	metrics *metrics.Metrics

	hits   atomic.Uint64
	misses atomic.Uint64
	swept  atomic.Uint64
}

// CacheStats is a point-in-time view of the cache counters.
type CacheStats struct {
	Entries int    `json:"entries"`
	Matches int    `json:"matches"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Swept   uint64 `json:"swept"`
}

// NewCache creates an empty cache. Call Run to start the background sweep.
func NewCache(cfg config.LiveCacheConfig, log *logger.Logger, m *metrics.Metrics) *Cache {
	return &Cache{
		entries:       make(map[model.Puuid]*cacheEntry),
		ttl:           cfg.TTL,
		sweepInterval: cfg.SweepInterval,
		now:           time.Now,
		log:           log.WithComponent("cache"),
		metrics:       m,
	}
}

// Get returns the snapshot cached under puuid if it has not expired.
func (c *Cache) Get(puuid model.Puuid) (*model.LiveGame, bool) {
	now := c.now()

	c.mu.RLock()
	e, ok := c.entries[puuid]
	c.mu.RUnlock()

	if !ok || !now.Before(e.expiresAt) {
		c.misses.Add(1)
		c.metrics.CacheMiss()
		return nil, false
	}
	c.hits.Add(1)
	c.metrics.CacheHit()
	return e.game, true
}

// Put stores game under every key in puuids with one common expiry,
// replacing whatever those keys held before. An empty key list is a no-op.
func (c *Cache) Put(matchID model.MatchID, puuids []model.Puuid, game *model.LiveGame) {
	if len(puuids) == 0 {
		return
	}
	e := &cacheEntry{
		matchID:   matchID,
		game:      game,
		expiresAt: c.now().Add(c.ttl),
	}

	c.mu.Lock()
	for _, p := range puuids {
		c.entries[p] = e
	}
	c.mu.Unlock()
}

// Sweep removes every key whose entry expired at or before now and returns
// how many keys it removed.
func (c *Cache) Sweep(now time.Time) int {
	c.mu.Lock()
	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	c.mu.Unlock()

	if removed > 0 {
		c.swept.Add(uint64(removed))
		c.metrics.Swept(removed)
	}
	return removed
}

// Run sweeps the cache every sweep interval until ctx is cancelled.
func (c *Cache) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := c.Sweep(c.now()); n > 0 {
				c.log.Debug("Swept expired live games", "event", model.EventCacheSweep, "removed", n, "remaining", c.Len())
			}
		}
	}
}

// Len returns the number of keys currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	matches := make(map[model.MatchID]struct{}, len(c.entries))
	for _, e := range c.entries {
		matches[e.matchID] = struct{}{}
	}
	entries := len(c.entries)
	c.mu.RUnlock()

	return CacheStats{
		Entries: entries,
		Matches: len(matches),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Swept:   c.swept.Load(),
	}
}
