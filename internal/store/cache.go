package store

import (
	"sync"
	"time"
)

const topScoresTTL = time.Minute

type cacheEntry struct {
	gameID string
	rows   []LeaderboardEntry
	at     time.Time
}

// topCache keeps TopScores results for a short time. Saving a score drops
// the entries of its game and of the composite board.
type topCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func newTopCache(ttl time.Duration) *topCache {
	return &topCache{ttl: ttl, now: time.Now, entries: map[string]cacheEntry{}}
}

func (c *topCache) get(key string) ([]LeaderboardEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.at) >= c.ttl {
		return nil, false
	}
	return e.rows, true
}

func (c *topCache) put(key, gameID string, rows []LeaderboardEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{gameID: gameID, rows: rows, at: c.now()}
}

func (c *topCache) invalidate(gameID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if e.gameID == gameID || e.gameID == TotalBoard {
			delete(c.entries, k)
		}
	}
}
