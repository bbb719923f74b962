package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/momnetk/giftbattle/internal/domain"
)

const listingKey = "active-cases"

// listingCache caches the public case listing. The catalog is populated
// by an external content-management path and changes rarely, so a short
// TTL keeps the hot read path off the database without serving stale
// data for long.
type listingCache struct {
	lru *expirable.LRU[string, []domain.CaseWithContents]
}

func newListingCache(ttl time.Duration) *listingCache {
	return &listingCache{
		lru: expirable.NewLRU[string, []domain.CaseWithContents](1, nil, ttl),
	}
}

func (c *listingCache) Get() ([]domain.CaseWithContents, bool) {
	return c.lru.Get(listingKey)
}

func (c *listingCache) Set(cases []domain.CaseWithContents) {
	c.lru.Add(listingKey, cases)
}

// Invalidate drops the cached listing
func (c *listingCache) Invalidate() {
	c.lru.Remove(listingKey)
}
