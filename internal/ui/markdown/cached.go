package markdown

import (
	"context"
	"fmt"
	"time"

	"github.com/zjrosen/gofcat/internal/cachemanager"
	"github.com/zjrosen/gofcat/internal/log"
)

// DocumentSource supplies raw Markdown write-ups by pattern name.
type DocumentSource interface {
	Document(name string) (string, error)
}

// CachedRenderer renders write-ups once per pattern and serves repeats from cache.
// Catalog content never changes after startup, so entries only expire by ttl.
type CachedRenderer struct {
	renderer *Renderer
	cache    *cachemanager.ReadThroughCache[string, string, string]
	ttl      time.Duration
}

// NewCachedRenderer wraps renderer with a read-through cache keyed by pattern name.
// A zero ttl disables caching.
func NewCachedRenderer(renderer *Renderer, docs DocumentSource, cache cachemanager.CacheManager[string, string], ttl time.Duration) *CachedRenderer {
	render := func(_ context.Context, name string) (string, error) {
		raw, err := docs.Document(name)
		if err != nil {
			return "", err
		}
		out, err := renderer.Render(raw)
		if err != nil {
			log.ErrorErr(log.CatRender, "rendering write-up", err, "name", name)
			return "", err
		}
		log.Debug(log.CatRender, "rendered write-up", "name", name, "bytes", len(out))
		return out, nil
	}

	return &CachedRenderer{
		renderer: renderer,
		cache:    cachemanager.NewReadThroughCache(cache, render, ttl <= 0),
		ttl:      ttl,
	}
}

// RenderDocument returns the rendered write-up for the named pattern.
func (c *CachedRenderer) RenderDocument(ctx context.Context, name string) (string, error) {
	return c.cache.Get(ctx, c.key(name), name, c.ttl)
}

// key includes style and width so differently configured renderers never share output.
func (c *CachedRenderer) key(name string) string {
	return fmt.Sprintf("%s:%d:%s", c.renderer.Style(), c.renderer.Width(), name)
}
