package kv

import (
	"context"
	"sync"
)

// InMemory is a thread-safe in-memory storage implementation. It is the
// default backend and also serves tests; values live for the process
// lifetime only.
type InMemory struct {
	items sync.Map // map[string]string
}

// NewInMemory creates a new in-memory storage.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// Get retrieves the value stored under key.
func (s *InMemory) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := s.items.Load(key)
	if !ok {
		return "", false, nil
	}

	str, ok := value.(string)
	if !ok {
		return "", false, nil
	}

	return str, true, nil
}

// Set stores value under key.
func (s *InMemory) Set(_ context.Context, key string, value string) error {
	s.items.Store(key, value)
	return nil
}

// Delete removes the value stored under key.
func (s *InMemory) Delete(_ context.Context, key string) error {
	s.items.Delete(key)
	return nil
}

// Close releases resources. In-memory storage holds none.
func (s *InMemory) Close() error {
	return nil
}
