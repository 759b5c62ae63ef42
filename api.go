package locale

import (
	"context"

	"github.com/voyago/locale/currency"
	"github.com/voyago/locale/registry"
	"github.com/voyago/locale/translation"
)

// The functions in this file are the surface view components consume. All of
// them are total: malformed input degrades to a defined fallback and nothing
// on the display path returns an error.

// WithLanguage returns a context carrying a request-scoped language
// override, honoured by the translation operations without mutating the
// stored selection.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return translation.ToContext(ctx, lang)
}

// Region returns the active region code.
func (s *Service) Region(_ context.Context) string {
	return s.store.Region()
}

// Language returns the active language code, honouring a request-scoped
// override placed in the context.
func (s *Service) Language(ctx context.Context) string {
	if lang, ok := translation.FromContext(ctx); ok && registry.IsValidLanguage(lang) {
		return lang
	}
	return s.store.Language()
}

// SetRegion updates the active region. Unknown codes are ignored.
func (s *Service) SetRegion(ctx context.Context, code string) {
	s.store.SetRegion(ctx, code)
}

// SetLanguage updates the active language. Unknown codes are ignored.
func (s *Service) SetLanguage(ctx context.Context, code string) {
	s.store.SetLanguage(ctx, code)
}

// Regions enumerates the supported regions for selector components.
func (s *Service) Regions() []registry.Region {
	return registry.Regions()
}

// Languages enumerates the supported languages for selector components.
func (s *Service) Languages() []registry.Language {
	return registry.Languages()
}

// ConvertPrice converts an amount between two currencies using the rate
// table. Unsupported pairs return the amount unchanged.
func (s *Service) ConvertPrice(amount float64, from, to string) float64 {
	return currency.Convert(amount, from, to)
}

// FormatPrice renders an amount, always denominated in the base currency,
// as a display string for the target region. The target defaults to the
// active region; an unknown region code falls back to the base currency.
func (s *Service) FormatPrice(_ context.Context, amount float64, region ...string) string {
	target := s.store.Region()
	if len(region) > 0 && region[0] != "" {
		target = region[0]
	}

	code := registry.CurrencyForRegion(target)
	converted := currency.Convert(amount, registry.BaseCurrency, code)

	return s.formatter.Format(converted, code)
}

// Translate resolves a display string for the active language.
func (s *Service) Translate(ctx context.Context, key string) string {
	return s.resolver.Resolve(s.Language(ctx), key)
}

// TranslateWithFallback resolves a display string and reports whether a
// default-language or key-echo fallback was substituted.
func (s *Service) TranslateWithFallback(ctx context.Context, key string) (string, bool) {
	return s.resolver.Lookup(s.Language(ctx), key)
}

// FallbackNotice builds the "not available in your language" notice for a
// content field, reporting whether it should render at all.
func (s *Service) FallbackNotice(ctx context.Context, fieldLabel string) (translation.Notice, bool) {
	return s.resolver.Notice(s.Language(ctx), fieldLabel)
}

// SessionID returns the stable session identifier persisted alongside the
// locale selections.
func (s *Service) SessionID(ctx context.Context) string {
	return s.store.SessionID(ctx)
}
