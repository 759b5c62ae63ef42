package kv

import "context"

// Noop is the storage used where durable client storage is unavailable,
// such as non-interactive execution contexts. Reads report unset and
// writes are skipped so consumers degrade to in-memory state for the
// session instead of failing.
type Noop struct{}

// NewNoop creates a storage that persists nothing.
func NewNoop() *Noop {
	return &Noop{}
}

func (s *Noop) Get(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

func (s *Noop) Set(_ context.Context, _ string, _ string) error {
	return nil
}

func (s *Noop) Delete(_ context.Context, _ string) error {
	return nil
}

func (s *Noop) Close() error {
	return nil
}
