package tile

import (
	"image"
	"sync"

	"github.com/aeyian/wallpaper"
)

// Cache holds the pattern for the most recently requested size.
//
// The pattern is regenerated if and only if the requested size differs from
// the cached one. There is no partial update: a miss always rebuilds the
// whole image.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	cfg      Config
	img      *image.RGBA
	size     image.Point
	hits     uint64
	rebuilds uint64
}

// Stats reports cache activity.
type Stats struct {
	// Width and Height are the cached size, zero before the first build.
	Width, Height int
	// Hits counts requests served from the cached image.
	Hits uint64
	// Rebuilds counts pattern generations.
	Rebuilds uint64
}

// New creates an empty cache that generates patterns with cfg.
func New(cfg Config) *Cache {
	return &Cache{cfg: cfg}
}

// Get returns the w x h pattern, rebuilding it when the size changed.
// It returns nil for a non-positive size and leaves the cache untouched.
//
// The returned image is shared; callers must not modify it.
func (c *Cache) Get(w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	size := image.Pt(w, h)
	if c.img != nil && c.size == size {
		c.hits++
		return c.img
	}

	c.img = Generate(w, h, c.cfg)
	c.size = size
	c.rebuilds++
	wallpaper.Logger().Debug("tile: pattern rebuilt", "width", w, "height", h, "rebuilds", c.rebuilds)
	return c.img
}

// Config returns the pattern configuration.
func (c *Cache) Config() Config {
	return c.cfg
}

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Width:    c.size.X,
		Height:   c.size.Y,
		Hits:     c.hits,
		Rebuilds: c.rebuilds,
	}
}

// Reset drops the cached image. Statistics are kept.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.img = nil
	c.size = image.Point{}
}
