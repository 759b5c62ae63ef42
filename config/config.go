// Package config loads service configuration from the environment and
// defines the small consumer interfaces other packages depend on.
package config

import (
	"context"

	"github.com/caarlos0/env/v11"
)

type contextKey string

func (c contextKey) String() string {
	return "locale/config/" + string(c)
}

const ctxKeyConfiguration = contextKey("configurationKey")

// ToContext adds service configuration to the current supplied context.
func ToContext(ctx context.Context, config any) context.Context {
	return context.WithValue(ctx, ctxKeyConfiguration, config)
}

// FromContext extracts service configuration from the supplied context if any exist.
func FromContext[T any](ctx context.Context) T {
	if cfg, ok := ctx.Value(ctxKeyConfiguration).(T); ok {
		return cfg
	}
	var zero T
	return zero
}

// FromEnv convenience method to process configs.
func FromEnv[T any]() (T, error) {
	return env.ParseAs[T]()
}

// FillEnv convenience method to fill a config object with environment data.
func FillEnv(v any) error {
	return env.Parse(v)
}

// Configuration is the default configuration surface for a locale service.
type Configuration struct {
	LogLevel      string `envDefault:"info"                      env:"LOG_LEVEL"       yaml:"log_level"`
	LogTimeFormat string `envDefault:"2006-01-02T15:04:05Z07:00" env:"LOG_TIME_FORMAT" yaml:"log_time_format"`
	LogColored    bool   `envDefault:"true"                      env:"LOG_COLORED"     yaml:"log_colored"`

	ServiceName        string `envDefault:"" env:"SERVICE_NAME"        yaml:"service_name"`
	ServiceEnvironment string `envDefault:"" env:"SERVICE_ENVIRONMENT" yaml:"service_environment"`
	ServiceVersion     string `envDefault:"" env:"SERVICE_VERSION"     yaml:"service_version"`

	DefaultRegion   string `envDefault:"eu" env:"DEFAULT_REGION"   yaml:"default_region"`
	DefaultLanguage string `envDefault:"en" env:"DEFAULT_LANGUAGE" yaml:"default_language"`

	// Keys the active selections are persisted under in durable client
	// storage. There is no schema versioning; unrecognised stored values
	// are treated as absent.
	RegionStorageKey   string `envDefault:"user_location" env:"REGION_STORAGE_KEY"   yaml:"region_storage_key"`
	LanguageStorageKey string `envDefault:"user_language" env:"LANGUAGE_STORAGE_KEY" yaml:"language_storage_key"`
	SessionStorageKey  string `envDefault:"session_id"    env:"SESSION_STORAGE_KEY"  yaml:"session_storage_key"`

	TranslationsFolder string `envDefault:"translation" env:"TRANSLATIONS_FOLDER" yaml:"translations_folder"`

	// StorageURI selects the durable storage backend by scheme:
	// mem://, redis://, valkey://.
	StorageURI string `envDefault:"mem://" env:"LOCALE_STORAGE_URI" yaml:"locale_storage_uri"`
}

type ConfigurationService interface {
	Name() string
	Environment() string
	Version() string
}

var _ ConfigurationService = new(Configuration)

func (c *Configuration) Name() string {
	return c.ServiceName
}
func (c *Configuration) Environment() string {
	return c.ServiceEnvironment
}
func (c *Configuration) Version() string {
	return c.ServiceVersion
}

type ConfigurationLogLevel interface {
	LoggingLevel() string
	LoggingTimeFormat() string
	LoggingColored() bool
	LoggingLevelIsDebug() bool
}

var _ ConfigurationLogLevel = new(Configuration)

func (c *Configuration) LoggingLevel() string {
	return c.LogLevel
}

func (c *Configuration) LoggingTimeFormat() string {
	return c.LogTimeFormat
}

func (c *Configuration) LoggingColored() bool {
	return c.LogColored
}

func (c *Configuration) LoggingLevelIsDebug() bool {
	return c.LogLevel == "debug" || c.LogLevel == "trace"
}

// ConfigurationLocale is the surface the locale state store consumes.
type ConfigurationLocale interface {
	GetDefaultRegion() string
	GetDefaultLanguage() string
	GetRegionStorageKey() string
	GetLanguageStorageKey() string
	GetSessionStorageKey() string
	GetTranslationsFolder() string
	GetStorageURI() string
}

var _ ConfigurationLocale = new(Configuration)

func (c *Configuration) GetDefaultRegion() string {
	return c.DefaultRegion
}

func (c *Configuration) GetDefaultLanguage() string {
	return c.DefaultLanguage
}

func (c *Configuration) GetRegionStorageKey() string {
	return c.RegionStorageKey
}

func (c *Configuration) GetLanguageStorageKey() string {
	return c.LanguageStorageKey
}

func (c *Configuration) GetSessionStorageKey() string {
	return c.SessionStorageKey
}

func (c *Configuration) GetTranslationsFolder() string {
	return c.TranslationsFolder
}

func (c *Configuration) GetStorageURI() string {
	return c.StorageURI
}
