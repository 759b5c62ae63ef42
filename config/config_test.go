package config_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/locale/config"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := config.FromEnv[config.Configuration]()
	require.NoError(t, err)

	assert.Equal(t, "eu", cfg.GetDefaultRegion())
	assert.Equal(t, "en", cfg.GetDefaultLanguage())
	assert.Equal(t, "user_location", cfg.GetRegionStorageKey())
	assert.Equal(t, "user_language", cfg.GetLanguageStorageKey())
	assert.Equal(t, "session_id", cfg.GetSessionStorageKey())
	assert.Equal(t, "translation", cfg.GetTranslationsFolder())
	assert.Equal(t, "mem://", cfg.GetStorageURI())
	assert.Equal(t, "info", cfg.LoggingLevel())
	assert.False(t, cfg.LoggingLevelIsDebug())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DEFAULT_REGION", "cn")
	t.Setenv("LOCALE_STORAGE_URI", "redis://localhost:6379/0")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.FromEnv[config.Configuration]()
	require.NoError(t, err)

	assert.Equal(t, "cn", cfg.GetDefaultRegion())
	assert.Equal(t, "redis://localhost:6379/0", cfg.GetStorageURI())
	assert.True(t, cfg.LoggingLevelIsDebug())
}

func TestContextRoundTrip(t *testing.T) {
	cfg, err := config.FromEnv[config.Configuration]()
	require.NoError(t, err)

	ctx := config.ToContext(context.Background(), &cfg)

	got := config.FromContext[*config.Configuration](ctx)
	require.NotNil(t, got)
	assert.Equal(t, cfg.GetRegionStorageKey(), got.GetRegionStorageKey())

	empty := config.FromContext[*config.Configuration](context.Background())
	assert.Nil(t, empty)
}
