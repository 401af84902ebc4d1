package cachemanager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/gofcat/internal/log"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// NewInMemoryCacheManager creates a go-cache backed manager.
// useCase names the cache in log output.
func NewInMemoryCacheManager[K ~string, V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemoryCacheManager[K, V] {
	return &InMemoryCacheManager[K, V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// InMemoryCacheManager is the go-cache implementation of CacheManager.
type InMemoryCacheManager[K ~string, V any] struct {
	useCase string
	cache   *gocache.Cache
}

// Compile-time interface check
var _ CacheManager[string, string] = (*InMemoryCacheManager[string, string])(nil)

// Get retrieves an item from the cache by its key
func (c *InMemoryCacheManager[K, V]) Get(_ context.Context, key K) (V, bool) {
	var zeroValue V

	value, found := c.cache.Get(string(key))
	if !found {
		log.Debug(log.CatCache, "cache miss", "cache", c.useCase, "key", key)
		return zeroValue, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "cache", c.useCase, "key", key)
		return zeroValue, false
	}

	log.Debug(log.CatCache, "cache hit", "cache", c.useCase, "key", key)
	return v, true
}

// Set stores a value; a ttl of zero uses the cache's default expiration.
func (c *InMemoryCacheManager[K, V]) Set(_ context.Context, key K, value V, ttl time.Duration) {
	c.cache.Set(string(key), value, ttl)
}

// Delete removes values by key
func (c *InMemoryCacheManager[K, V]) Delete(_ context.Context, keys ...K) error {
	for _, key := range keys {
		c.cache.Delete(string(key))
	}
	return nil
}

// Flush removes every value
func (c *InMemoryCacheManager[K, V]) Flush(_ context.Context) error {
	c.cache.Flush()
	return nil
}

// ItemCount returns the number of cached items, including expired ones not yet cleaned up.
func (c *InMemoryCacheManager[K, V]) ItemCount() int {
	return c.cache.ItemCount()
}

// LoadFile merges items written by SaveFile into the cache. Items already in
// memory win, and saved expirations are kept. A missing file is not an error.
func (c *InMemoryCacheManager[K, V]) LoadFile(path string) error {
	if err := c.cache.LoadFile(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug(log.CatCache, "no saved cache", "cache", c.useCase, "path", path)
			return nil
		}
		return fmt.Errorf("loading %s cache from %s: %w", c.useCase, path, err)
	}
	log.Debug(log.CatCache, "loaded saved cache", "cache", c.useCase, "path", path, "items", c.cache.ItemCount())
	return nil
}

// SaveFile writes every unexpired item to path, creating its directory.
func (c *InMemoryCacheManager[K, V]) SaveFile(path string) error {
	c.cache.DeleteExpired()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	if err := c.cache.SaveFile(path); err != nil {
		return fmt.Errorf("saving %s cache to %s: %w", c.useCase, path, err)
	}
	log.Debug(log.CatCache, "saved cache", "cache", c.useCase, "path", path, "items", c.cache.ItemCount())
	return nil
}
