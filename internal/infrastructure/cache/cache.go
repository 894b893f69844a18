package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ImageCache is a bounded, expiring cache of rendered QR images keyed by
// payload text. It is safe for concurrent use.
type ImageCache struct {
	lru *expirable.LRU[string, []byte]
}

func NewImageCache(size int, ttl time.Duration) *ImageCache {
	return &ImageCache{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *ImageCache) Get(payload string) ([]byte, bool) {
	return c.lru.Get(payload)
}

func (c *ImageCache) Add(payload string, image []byte) {
	c.lru.Add(payload, image)
}

func (c *ImageCache) Len() int {
	return c.lru.Len()
}
