package store

import (
	"context"

	"github.com/rs/xid"
)

// SessionID returns the durable session identifier for this client,
// generating and persisting one on first use. Carts and anonymous bookings
// are keyed by it. When durable storage is unavailable the id still stays
// stable for the lifetime of the process.
func (s *Store) SessionID(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != "" {
		return s.session
	}

	value, found, err := s.storage.Get(ctx, s.sessionKey)
	if err == nil && found && value != "" {
		s.session = value
		return s.session
	}

	s.session = xid.New().String()
	s.persist(ctx, s.sessionKey, s.session)

	return s.session
}
