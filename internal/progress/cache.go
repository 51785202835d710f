package progress

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SkillQuest_Go/internal/domain"
)

type cachedProgressEntry struct {
	Version  string
	Progress *domain.LearnerProgress
	CachedAt time.Time
}

// progressCache is an expiring LRU of resolved learner progress keyed by learner id
type progressCache struct {
	lru *expirable.LRU[string, *cachedProgressEntry]
}

func newProgressCache(size int, ttl time.Duration) *progressCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &progressCache{
		lru: expirable.NewLRU[string, *cachedProgressEntry](size, nil, ttl),
	}
}

// Get returns the cached progress; entries from an older schema version are dropped
func (c *progressCache) Get(learnerID string) (*domain.LearnerProgress, bool) {
	entry, found := c.lru.Get(learnerID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(learnerID)
		return nil, false
	}
	return entry.Progress, true
}

func (c *progressCache) Set(learnerID string, p *domain.LearnerProgress) {
	c.lru.Add(learnerID, &cachedProgressEntry{
		Version:  CacheSchemaVersion,
		Progress: p,
		CachedAt: time.Now(),
	})
}

func (c *progressCache) Invalidate(learnerID string) {
	c.lru.Remove(learnerID)
}

func (c *progressCache) Clear() {
	c.lru.Purge()
}

func (c *progressCache) Len() int {
	return c.lru.Len()
}
