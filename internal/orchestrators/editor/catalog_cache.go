package editor

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/workspace"
)

const catalogCacheTTL = 30 * time.Minute

// CatalogCache keeps each creature's cropped parts so starting a session
// does not re-crop every image. Creatures are immutable once stored, so
// entries are keyed by creature ID alone.
type CatalogCache struct {
	cache *ristretto.Cache[string, []workspace.CatalogEntry]
}

// NewCatalogCache creates a cache bounded to maxMB megabytes of part images.
func NewCatalogCache(maxMB int64) (*CatalogCache, error) {
	if maxMB <= 0 {
		return nil, errors.InvalidArgument("catalog cache size must be positive")
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, []workspace.CatalogEntry]{
		NumCounters: 10000,
		MaxCost:     maxMB * 1024 * 1024,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog cache")
	}
	return &CatalogCache{cache: cache}, nil
}

// Entries returns the cropped parts of c, cropping on a miss.
func (cc *CatalogCache) Entries(c *entities.Creature) []workspace.CatalogEntry {
	if entries, ok := cc.cache.Get(c.ID); ok {
		return entries
	}

	entries := workspace.CropParts(c)
	cost := int64(1)
	for _, e := range entries {
		cost += int64(len(e.Image.Data))
	}
	cc.cache.SetWithTTL(c.ID, entries, cost, catalogCacheTTL)
	cc.cache.Wait()
	return entries
}

// Clear drops every cached catalog
func (cc *CatalogCache) Clear() {
	cc.cache.Clear()
}

// Close releases the cache's background goroutines
func (cc *CatalogCache) Close() {
	cc.cache.Close()
}
