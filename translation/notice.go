package translation

import (
	"fmt"

	"github.com/voyago/locale/registry"
)

// Message keys for the fallback notice. The notice text is itself localized
// and subject to the same resolver fallback rule as any other string.
const (
	KeyNotAvailableIn = "message.not_available_in"
	KeyNotTranslated  = "message.not_translated"
)

const defaultFieldLabel = "content"

// Notice is the fallback-notifier contract: everything a content area needs
// to tell the user a field is being shown in the default language.
type Notice struct {
	// Language is the active language the content is missing in.
	Language registry.Language

	// Headline reads like "Description is not available in 中文".
	Headline string

	// Detail is the secondary explanatory message.
	Detail string
}

// Notice decides whether a fallback notice should render for the active
// language and, if so, builds it. It renders only when the active language
// differs from the default, since default-language content is always
// authoritative.
func (r *Resolver) Notice(lang, fieldLabel string) (Notice, bool) {
	if normalize(lang) == r.defaultLang.String() {
		return Notice{}, false
	}

	active, ok := registry.LanguageByCode(lang)
	if !ok {
		return Notice{}, false
	}

	if fieldLabel == "" {
		fieldLabel = defaultFieldLabel
	}

	return Notice{
		Language: active,
		Headline: fmt.Sprintf("%s %s %s", fieldLabel, r.Resolve(lang, KeyNotAvailableIn), active.Name),
		Detail:   r.Resolve(lang, KeyNotTranslated),
	}, true
}
