// Package store holds the persistence adapters: flat key-value stores of
// opaque string blobs, with no knowledge of what the blobs contain.
package store

import "errors"

// Store gets and sets opaque string values by key.
// Get reports ok=false for a key that was never set.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

var ErrClosed = errors.New("store closed")

// Memory keeps values in a map. It is meant to be owned by a single
// goroutine and does no locking.
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}
