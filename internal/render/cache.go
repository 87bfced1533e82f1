package render

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/zeebo/xxh3"

	"github.com/xkiven/ResumeBuilder/internal/model"
)

// Cache memoizes rendered HTML keyed by a hash of the document and variant.
// Rendering is pure, so an entry never goes stale; expiry only bounds memory.
type Cache struct {
	r *Renderer
	c *cache.Cache
}

func NewCache(r *Renderer, ttl time.Duration) *Cache {
	return &Cache{r: r, c: cache.New(ttl, 2*ttl)}
}

func cacheKey(doc model.Resume, v Variant) (string, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	h := xxh3.Hash128(append(b, string(v)...))
	return v.String() + ":" + strconv.FormatUint(h.Hi, 16) + strconv.FormatUint(h.Lo, 16), nil
}

// HTML returns the rendered page for doc, rendering on a miss.
func (c *Cache) HTML(doc model.Resume, v Variant) ([]byte, error) {
	key, err := cacheKey(doc, v)
	if err != nil {
		return nil, err
	}
	if b, ok := c.c.Get(key); ok {
		return b.([]byte), nil
	}
	b, err := c.r.RenderHTML(doc, v)
	if err != nil {
		return nil, err
	}
	c.c.Set(key, b, cache.DefaultExpiration)
	return b, nil
}

// Len reports the number of cached pages.
func (c *Cache) Len() int { return c.c.ItemCount() }
