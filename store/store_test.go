package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/locale/config"
	"github.com/voyago/locale/kv"
	"github.com/voyago/locale/store"
)

func localeConfig(t *testing.T) config.ConfigurationLocale {
	t.Helper()

	cfg, err := config.FromEnv[config.Configuration]()
	require.NoError(t, err)
	return &cfg
}

// brokenStorage simulates an environment where durable client storage is
// unavailable: every operation errors.
type brokenStorage struct{}

func (brokenStorage) Get(_ context.Context, _ string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}

func (brokenStorage) Set(_ context.Context, _ string, _ string) error {
	return errors.New("storage unavailable")
}

func (brokenStorage) Delete(_ context.Context, _ string) error {
	return errors.New("storage unavailable")
}

func (brokenStorage) Close() error { return nil }

func TestFreshSessionDefaults(t *testing.T) {
	ctx := context.Background()

	s := store.New(ctx, localeConfig(t), kv.NewInMemory())

	assert.Equal(t, "eu", s.Region())
	assert.Equal(t, "en", s.Language())
}

func TestSetRegion(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewInMemory()

	s := store.New(ctx, localeConfig(t), storage)

	for _, code := range []string{"cn", "eu"} {
		s.SetRegion(ctx, code)
		assert.Equal(t, code, s.Region())

		persisted, found, err := storage.Get(ctx, "user_location")
		require.NoError(t, err)
		require.True(t, found, "setter must write through before returning")
		assert.Equal(t, code, persisted)
	}
}

func TestSetRegionInvalidCodeIsNoOp(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewInMemory()

	s := store.New(ctx, localeConfig(t), storage)
	s.SetRegion(ctx, "cn")

	for _, code := range []string{"us", "", "CN", "mars"} {
		s.SetRegion(ctx, code)
		assert.Equal(t, "cn", s.Region(), "invalid code %q must not corrupt state", code)
	}

	persisted, _, _ := storage.Get(ctx, "user_location")
	assert.Equal(t, "cn", persisted)
}

func TestSetLanguage(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewInMemory()

	s := store.New(ctx, localeConfig(t), storage)

	s.SetLanguage(ctx, "zh")
	assert.Equal(t, "zh", s.Language())

	persisted, found, err := storage.Get(ctx, "user_language")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "zh", persisted)

	s.SetLanguage(ctx, "klingon")
	assert.Equal(t, "zh", s.Language())
}

func TestPersistedSelectionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewInMemory()

	first := store.New(ctx, localeConfig(t), storage)
	first.SetRegion(ctx, "cn")
	first.SetLanguage(ctx, "zh")

	// A second store over the same storage models an application restart.
	second := store.New(ctx, localeConfig(t), storage)
	assert.Equal(t, "cn", second.Region())
	assert.Equal(t, "zh", second.Language())
}

func TestCorruptedPersistedValueIsIgnored(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewInMemory()

	require.NoError(t, storage.Set(ctx, "user_location", "atlantis"))
	require.NoError(t, storage.Set(ctx, "user_language", "42"))

	s := store.New(ctx, localeConfig(t), storage)
	assert.Equal(t, "eu", s.Region())
	assert.Equal(t, "en", s.Language())
}

func TestBrokenStorageDegradesToMemoryOnly(t *testing.T) {
	ctx := context.Background()

	s := store.New(ctx, localeConfig(t), brokenStorage{})
	assert.Equal(t, "eu", s.Region())

	s.SetRegion(ctx, "cn")
	assert.Equal(t, "cn", s.Region(), "in-memory state still updates when persistence fails")
}

func TestNilStorageBehavesLikeNoop(t *testing.T) {
	ctx := context.Background()

	s := store.New(ctx, localeConfig(t), nil)
	s.SetLanguage(ctx, "zh")
	assert.Equal(t, "zh", s.Language())
}

func TestSessionID(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewInMemory()

	s := store.New(ctx, localeConfig(t), storage)

	id := s.SessionID(ctx)
	require.NotEmpty(t, id)
	assert.Equal(t, id, s.SessionID(ctx), "session id is stable within a session")

	restarted := store.New(ctx, localeConfig(t), storage)
	assert.Equal(t, id, restarted.SessionID(ctx), "session id survives a restart")

	other := store.New(ctx, localeConfig(t), kv.NewInMemory())
	assert.NotEqual(t, id, other.SessionID(ctx))
}

func TestSessionIDWithoutStorageStaysStable(t *testing.T) {
	ctx := context.Background()

	s := store.New(ctx, localeConfig(t), brokenStorage{})
	assert.Equal(t, s.SessionID(ctx), s.SessionID(ctx))
}
