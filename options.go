package locale

import (
	"context"

	"github.com/pitabwire/util"

	"github.com/voyago/locale/config"
	"github.com/voyago/locale/kv"
	"github.com/voyago/locale/translation"
)

// WithName specifies the name the service will utilize.
func WithName(name string) Option {
	return func(_ context.Context, s *Service) {
		s.name = name
	}
}

// WithConfig specifies or overrides the configuration object of the service.
func WithConfig(configuration any) Option {
	return func(_ context.Context, s *Service) {
		s.configuration = configuration
	}
}

// WithLogger initialises the service logger from the active configuration.
func WithLogger(opts ...util.Option) Option {
	return func(ctx context.Context, s *Service) {
		if s.configuration != nil {
			cfg, ok := s.configuration.(config.ConfigurationLogLevel)
			if ok {
				logLevel, err := util.ParseLevel(cfg.LoggingLevel())
				if err == nil {
					opts = append(opts, util.WithLogLevel(logLevel))
				}
				opts = append(opts,
					util.WithLogTimeFormat(cfg.LoggingTimeFormat()),
					util.WithLogNoColor(!cfg.LoggingColored()))
			}
		}

		log := util.NewLogger(ctx, opts...)
		log.WithField("service", s.Name())
		s.logger = log
	}
}

// WithStorage supplies the durable storage the locale selections persist in,
// instead of the backend the configuration URI would select.
func WithStorage(storage kv.Storage) Option {
	return func(_ context.Context, s *Service) {
		s.storage = storage
	}
}

// WithTranslations loads message catalogs from the given folder for the
// supplied languages. Catalog loading is a startup requirement, so a missing
// file panics here rather than failing at render time.
func WithTranslations(messagesFolder string, languages ...string) Option {
	return func(_ context.Context, s *Service) {
		resolver, err := translation.NewResolver(messagesFolder, languages...)
		if err != nil {
			panic(err)
		}
		s.resolver = resolver
	}
}

// WithResolver supplies an already constructed translation resolver.
func WithResolver(resolver *translation.Resolver) Option {
	return func(_ context.Context, s *Service) {
		s.resolver = resolver
	}
}
