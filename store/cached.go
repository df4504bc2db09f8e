package store

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached is a write-through LRU cache in front of another Store.
type Cached struct {
	backend Store
	lru     *lru.Cache[string, string]
}

func NewCached(backend Store, size int) (*Cached, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Cached{backend: backend, lru: cache}, nil
}

func (c *Cached) Get(key string) (string, bool, error) {
	if value, ok := c.lru.Get(key); ok {
		return value, true, nil
	}

	value, ok, err := c.backend.Get(key)
	if err != nil || !ok {
		return value, ok, err
	}
	c.lru.Add(key, value)
	return value, true, nil
}

func (c *Cached) Set(key, value string) error {
	if err := c.backend.Set(key, value); err != nil {
		// the backend state is unknown now, read it again next time
		c.lru.Remove(key)
		return err
	}
	c.lru.Add(key, value)
	return nil
}
