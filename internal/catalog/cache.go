package catalog

import (
	"context"
	"sync"

	"github.com/goliatone/go-sitecontent/content"
)

// CachedService memoizes collection listings on top of an inner service.
// The default deployment re-reads the filesystem per request and does not use
// this wrapper; enable it together with the watch feature so invalidation is
// driven by filesystem events rather than TTLs.
type CachedService struct {
	inner content.Service

	mu    sync.RWMutex
	lists map[string][]content.Record
}

var _ content.Service = (*CachedService)(nil)

// NewCachedService wraps inner with a per-collection listing cache.
func NewCachedService(inner content.Service) *CachedService {
	return &CachedService{
		inner: inner,
		lists: map[string][]content.Record{},
	}
}

// List serves the cached listing when present, otherwise consults the inner
// service and stores the result.
func (c *CachedService) List(ctx context.Context, collection string) ([]content.Record, error) {
	c.mu.RLock()
	cached, ok := c.lists[collection]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	records, err := c.inner.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.lists[collection] = records
	c.mu.Unlock()
	return records, nil
}

// GetBySlug always consults the inner service; single-record reads are cheap
// and bypassing the cache keeps detail pages fresh even between invalidations.
func (c *CachedService) GetBySlug(ctx context.Context, collection, category, slug string) (*content.Record, error) {
	return c.inner.GetBySlug(ctx, collection, category, slug)
}

// FindBySlug always consults the inner service.
func (c *CachedService) FindBySlug(ctx context.Context, collection, slug string) (*content.Record, error) {
	return c.inner.FindBySlug(ctx, collection, slug)
}

// Adjacent derives adjacency from the (possibly cached) listing.
func (c *CachedService) Adjacent(ctx context.Context, collection, slug string) (content.Adjacency, error) {
	records, err := c.List(ctx, collection)
	if err != nil {
		return content.Adjacency{}, err
	}
	return content.Adjacent(records, slug), nil
}

// Invalidate drops the cached listing for one collection.
func (c *CachedService) Invalidate(collection string) {
	c.mu.Lock()
	delete(c.lists, collection)
	c.mu.Unlock()
}

// InvalidateAll drops every cached listing.
func (c *CachedService) InvalidateAll() {
	c.mu.Lock()
	c.lists = map[string][]content.Record{}
	c.mu.Unlock()
}
