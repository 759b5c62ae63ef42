// Package locale normalizes the storefront's notion of where the user is and
// what language they read: it tracks the selected region and language,
// persists the choice, converts and formats prices for the active market and
// resolves translated strings with an explicit fallback signal.
package locale

import (
	"context"

	"github.com/pitabwire/util"

	"github.com/voyago/locale/config"
	"github.com/voyago/locale/currency"
	"github.com/voyago/locale/kv"
	"github.com/voyago/locale/registry"
	"github.com/voyago/locale/store"
	"github.com/voyago/locale/translation"

	// Durable storage backends register their URI schemes on import.
	_ "github.com/voyago/locale/kv/redis"
	_ "github.com/voyago/locale/kv/valkey"
)

type contextKey string

func (c contextKey) String() string {
	return "locale/" + string(c)
}

const ctxKeyService = contextKey("serviceKey")

// Service holds together the locale components: the state store, the
// translation resolver and the price formatter. An instance of this type is
// scoped to stay for the lifetime of the application and is pushed and
// pulled from contexts to make it easy to pass around. Build it exactly once
// at process start, before any consumer reads locale state.
type Service struct {
	name          string
	logger        *util.LogEntry
	configuration any

	storage   kv.Storage
	store     *store.Store
	resolver  *translation.Resolver
	formatter *currency.Formatter

	cleanup func(ctx context.Context)
}

// Option assembles a service piece by piece at construction time.
type Option func(ctx context.Context, s *Service)

// NewService creates a new locale service with the name and supplied options.
// Configuration defaults come from the environment; storage and translations
// not supplied through options are built from that configuration. The only
// failure mode is a construction-time one: an unreachable storage backend or
// an unreadable message catalog.
func NewService(ctx context.Context, name string, opts ...Option) (context.Context, *Service, error) {
	logger := util.Log(ctx)
	ctx = util.ContextWithLogger(ctx, logger)

	cfg, err := config.FromEnv[config.Configuration]()
	if err != nil {
		return ctx, nil, err
	}

	s := &Service{
		name:          name,
		logger:        logger,
		configuration: &cfg,
	}

	if cfg.ServiceName != "" {
		s.name = cfg.ServiceName
	}

	opts = append(opts, WithLogger())
	s.Init(ctx, opts...)

	localeCfg := s.localeConfig(ctx)

	if s.storage == nil {
		s.storage, err = kv.FromURI(ctx, localeCfg.GetStorageURI())
		if err != nil {
			return ctx, nil, err
		}
	}

	if s.resolver == nil {
		languages := make([]string, 0, len(registry.Languages()))
		for _, l := range registry.Languages() {
			languages = append(languages, l.Code)
		}

		s.resolver, err = translation.NewResolver(localeCfg.GetTranslationsFolder(), languages...)
		if err != nil {
			return ctx, nil, err
		}
	}

	s.formatter = currency.NewFormatter()
	s.store = store.New(ctx, localeCfg, s.storage)

	ctx = SvcToContext(ctx, s)
	ctx = config.ToContext(ctx, s.configuration)
	ctx = util.ContextWithLogger(ctx, s.logger)
	return ctx, s, nil
}

// localeConfig resolves the locale configuration surface, falling back to
// defaults when a custom configuration object does not implement it.
func (s *Service) localeConfig(ctx context.Context) config.ConfigurationLocale {
	if cfg, ok := s.configuration.(config.ConfigurationLocale); ok {
		return cfg
	}

	defaults, err := config.FromEnv[config.Configuration]()
	if err != nil {
		s.Log(ctx).WithError(err).Warn("localeConfig -- could not parse environment configuration")
	}
	return &defaults
}

// SvcToContext pushes a service instance into the supplied context for easier propagation.
func SvcToContext(ctx context.Context, service *Service) context.Context {
	return context.WithValue(ctx, ctxKeyService, service)
}

// Svc obtains a service instance being propagated through the context.
func Svc(ctx context.Context) *Service {
	service, ok := ctx.Value(ctxKeyService).(*Service)
	if !ok {
		return nil
	}

	return service
}

// Name gets the name of the service.
func (s *Service) Name() string {
	return s.name
}

// Config obtains the configuration object supplied or loaded at startup.
func (s *Service) Config() any {
	return s.configuration
}

// Log returns a logger scoped to the supplied context.
func (s *Service) Log(ctx context.Context) *util.LogEntry {
	return s.logger.WithContext(ctx)
}

// Init evaluates the options provided as arguments and supplies them to the service object.
func (s *Service) Init(ctx context.Context, opts ...Option) {
	for _, opt := range opts {
		opt(ctx, s)
	}
}

// AddCleanupMethod adds user defined functions to be run just before the service stops.
func (s *Service) AddCleanupMethod(f func(ctx context.Context)) {
	if s.cleanup == nil {
		s.cleanup = f
		return
	}

	old := s.cleanup
	s.cleanup = func(ctx context.Context) { f(ctx); old(ctx) }
}

// Stop releases service resources. The locale state itself needs no
// teardown; it lives until the session ends.
func (s *Service) Stop(ctx context.Context) {
	if s.cleanup != nil {
		s.cleanup(ctx)
	}

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			s.Log(ctx).WithError(err).Warn("Stop -- could not close storage")
		}
	}
}

// Store exposes the locale state store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Resolver exposes the translation resolver.
func (s *Service) Resolver() *translation.Resolver {
	return s.resolver
}
