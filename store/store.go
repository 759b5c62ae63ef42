// Package store owns the user's active region and language. It is the single
// writable source of that state: consumers read through its getters and all
// mutation goes through the two setters so the registry validation invariant
// always holds.
package store

import (
	"context"
	"sync"

	"github.com/pitabwire/util"

	"github.com/voyago/locale/config"
	"github.com/voyago/locale/kv"
	"github.com/voyago/locale/registry"
)

// Store holds the active locale selections for a session. Create exactly one
// per process at startup, before any consumer reads it. Values are always
// valid registry codes; reads never block and never fail.
type Store struct {
	mu       sync.RWMutex
	region   string
	language string
	session  string

	storage kv.Storage

	regionKey   string
	languageKey string
	sessionKey  string
}

// New initialises a store from configuration and durable storage. Persisted
// values are adopted only when they are valid registry codes, which keeps a
// stale or corrupted stored value from producing an invalid active state;
// anything else falls back to the configured defaults. Storage read failures
// degrade to defaults, never to an error.
func New(ctx context.Context, cfg config.ConfigurationLocale, storage kv.Storage) *Store {
	if storage == nil {
		storage = kv.NewNoop()
	}

	s := &Store{
		region:      registry.RegionEurope,
		language:    registry.LanguageEnglish,
		storage:     storage,
		regionKey:   cfg.GetRegionStorageKey(),
		languageKey: cfg.GetLanguageStorageKey(),
		sessionKey:  cfg.GetSessionStorageKey(),
	}

	if registry.IsValidRegion(cfg.GetDefaultRegion()) {
		s.region = cfg.GetDefaultRegion()
	}
	if registry.IsValidLanguage(cfg.GetDefaultLanguage()) {
		s.language = cfg.GetDefaultLanguage()
	}

	if code, ok := s.load(ctx, s.regionKey); ok && registry.IsValidRegion(code) {
		s.region = code
	}
	if code, ok := s.load(ctx, s.languageKey); ok && registry.IsValidLanguage(code) {
		s.language = code
	}

	return s
}

func (s *Store) load(ctx context.Context, key string) (string, bool) {
	value, found, err := s.storage.Get(ctx, key)
	if err != nil {
		util.Log(ctx).WithError(err).WithField("key", key).
			Warn("load -- durable storage unavailable, using defaults")
		return "", false
	}
	return value, found
}

// Region returns the active region code.
func (s *Store) Region() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.region
}

// Language returns the active language code.
func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetRegion updates the active region and writes it through to durable
// storage before returning. A code that is not in the region registry is
// ignored: the setters are driven by closed enumerations in selector UIs,
// so an invalid value is an upstream defect and must not corrupt valid
// state or crash rendering.
func (s *Store) SetRegion(ctx context.Context, code string) {
	if !registry.IsValidRegion(code) {
		util.Log(ctx).WithField("region", code).Warn("SetRegion -- ignoring unknown region code")
		return
	}

	s.mu.Lock()
	s.region = code
	s.mu.Unlock()

	s.persist(ctx, s.regionKey, code)
}

// SetLanguage updates the active language, symmetric to SetRegion.
func (s *Store) SetLanguage(ctx context.Context, code string) {
	if !registry.IsValidLanguage(code) {
		util.Log(ctx).WithField("language", code).Warn("SetLanguage -- ignoring unknown language code")
		return
	}

	s.mu.Lock()
	s.language = code
	s.mu.Unlock()

	s.persist(ctx, s.languageKey, code)
}

func (s *Store) persist(ctx context.Context, key, value string) {
	if err := s.storage.Set(ctx, key, value); err != nil {
		util.Log(ctx).WithError(err).WithField("key", key).
			Warn("persist -- durable storage unavailable, keeping in-memory state only")
	}
}
