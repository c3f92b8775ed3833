package store

import (
	"context"
	"sync"
	"time"

	"gmarm/internal/documents"
	"gmarm/pkg/platform/sentinel"
)

type cachedRequirements struct {
	reqs     documents.Requirements
	storedAt time.Time
}

// InMemoryCache keeps checklists per process with TTL expiration.
type InMemoryCache struct {
	mu       sync.RWMutex
	entries  map[string]cachedRequirements
	cacheTTL time.Duration
	now      func() time.Time
}

func NewInMemoryCache(cacheTTL time.Duration) *InMemoryCache {
	return &InMemoryCache{
		entries:  make(map[string]cachedRequirements),
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// SaveRequirements stores a checklist under its key. Nil is a no-op.
func (c *InMemoryCache) SaveRequirements(_ context.Context, reqs *documents.Requirements) error {
	if reqs == nil {
		return nil
	}
	stored := *reqs
	stored.Documents = append([]documents.RequiredDocument(nil), reqs.Documents...)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[reqs.Key.String()] = cachedRequirements{reqs: stored, storedAt: c.now()}
	return nil
}

// FindRequirements returns sentinel.ErrNotFound when absent or expired.
func (c *InMemoryCache) FindRequirements(_ context.Context, key documents.RequirementKey) (*documents.Requirements, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if cached, ok := c.entries[key.String()]; ok {
		if c.now().Sub(cached.storedAt) < c.cacheTTL {
			out := cached.reqs
			return &out, nil
		}
	}
	return nil, sentinel.ErrNotFound
}
