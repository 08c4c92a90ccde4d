package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// VectorCache memoizes embedding vectors by input text, so repeated index
// builds and repeated query embeddings skip the remote API. The core query
// pipeline never caches whole responses; only the search collaborator's
// embedding calls go through here.
type VectorCache struct {
	cache *gocache.Cache
}

// NewVectorCache creates a cache with the given entry TTL and cleanup
// interval.
func NewVectorCache(defaultTTL, cleanupInterval time.Duration) *VectorCache {
	return &VectorCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a cached vector.
func (c *VectorCache) Get(text string) ([]float64, bool) {
	if val, found := c.cache.Get(text); found {
		return val.([]float64), true
	}
	return nil, false
}

// Set stores a vector under the given text.
func (c *VectorCache) Set(text string, vector []float64) {
	c.cache.Set(text, vector, gocache.DefaultExpiration)
}

// Len returns the number of cached vectors.
func (c *VectorCache) Len() int {
	return c.cache.ItemCount()
}

// Clear removes all cached vectors.
func (c *VectorCache) Clear() {
	c.cache.Flush()
}
