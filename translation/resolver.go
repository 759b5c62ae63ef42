// Package translation resolves display strings for the active language and
// reports when a default-language fallback was substituted, so content areas
// can flag untranslated fields.
package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type contextKey string

func (c contextKey) String() string {
	return "locale/translation/" + string(c)
}

const ctxKeyLanguage = contextKey("languageKey")

// ToContext adds a request-scoped language override to the supplied context.
func ToContext(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguage, lang)
}

// FromContext extracts the language override from the supplied context if one exists.
func FromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(ctxKeyLanguage).(string)
	if !ok || lang == "" {
		return "", false
	}
	return lang, true
}

// Resolver looks display strings up in per-language catalogs. The default
// language catalog is assumed complete; a key missing from it is a data
// authoring defect, not a runtime condition this component repairs. The
// resolver never mutates locale state.
type Resolver struct {
	bundle      *i18n.Bundle
	defaultLang language.Tag
}

// NewResolver loads one TOML message catalog per language from the given
// folder, named messages.<lang>.toml. Catalogs are a startup requirement;
// a missing file fails construction.
func NewResolver(messagesFolder string, languages ...string) (*Resolver, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, lang := range languages {
		path := fmt.Sprintf("%s/messages.%v.toml", messagesFolder, lang)
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return nil, fmt.Errorf("load message catalog %s: %w", path, err)
		}
	}

	return &Resolver{bundle: bundle, defaultLang: language.English}, nil
}

// NewResolverFromBundle wraps an already populated bundle.
func NewResolverFromBundle(bundle *i18n.Bundle) *Resolver {
	return &Resolver{bundle: bundle, defaultLang: language.English}
}

// Bundle exposes the underlying translation bundle.
func (r *Resolver) Bundle() *i18n.Bundle {
	return r.bundle
}

// Resolve returns the string for key under lang. When the catalog has no
// entry for lang the default-language value is returned; when no catalog
// has the key at all the key itself is returned so the caller never renders
// empty text.
func (r *Resolver) Resolve(lang, key string) string {
	value, _ := r.Lookup(lang, key)
	return value
}

// Lookup resolves key like Resolve and additionally reports whether the
// result is a fallback, meaning no entry existed for key under lang and a
// default-language or key-echo value was substituted.
func (r *Resolver) Lookup(lang, key string) (string, bool) {
	localizer := i18n.NewLocalizer(r.bundle, lang)

	value, servedTag, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		// go-i18n reports a MessageNotFoundErr together with the
		// default-language value when it substitutes one; the value is
		// only empty when no catalog has the key at all.
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) || value == "" {
			return key, true
		}
		return value, true
	}

	requested, parseErr := language.Parse(normalize(lang))
	if parseErr != nil {
		return value, true
	}

	return value, servedTag != requested
}

func normalize(lang string) string {
	return strings.ReplaceAll(lang, "_", "-")
}
