// Package registry holds the static enumerations of supported regions and
// languages. The data is fixed at compile time; selector components iterate
// the slices while everything else looks entries up by code.
package registry

// Region is a supported geographic market together with the currency prices
// are displayed in for that market.
type Region struct {
	Code     string
	Name     string
	Flag     string
	Currency string
}

// Language is a supported display language.
type Language struct {
	Code string
	Name string
	Flag string
}

const (
	// RegionEurope is the compiled-in default region.
	RegionEurope = "eu"
	RegionChina  = "cn"

	// LanguageEnglish is the compiled-in default language. Its catalog is
	// authoritative and assumed complete.
	LanguageEnglish = "en"
	LanguageChinese = "zh"

	// BaseCurrency is the currency all stored amounts are denominated in.
	BaseCurrency = "EUR"
)

var regions = []Region{
	{Code: RegionEurope, Name: "Europe", Flag: "🇪🇺", Currency: "EUR"},
	{Code: RegionChina, Name: "China", Flag: "🇨🇳", Currency: "CNY"},
}

var languages = []Language{
	{Code: LanguageEnglish, Name: "English", Flag: "🇬🇧"},
	{Code: LanguageChinese, Name: "中文", Flag: "🇨🇳"},
}

// Regions enumerates the supported regions in display order.
// The returned slice is a copy and safe to mutate.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// Languages enumerates the supported languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// RegionByCode looks a region up by its code.
func RegionByCode(code string) (Region, bool) {
	for _, r := range regions {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

// LanguageByCode looks a language up by its code.
func LanguageByCode(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// IsValidRegion reports whether code names a supported region.
func IsValidRegion(code string) bool {
	_, ok := RegionByCode(code)
	return ok
}

// IsValidLanguage reports whether code names a supported language.
func IsValidLanguage(code string) bool {
	_, ok := LanguageByCode(code)
	return ok
}

// CurrencyForRegion resolves the display currency for a region code.
// Unknown regions resolve to the base currency.
func CurrencyForRegion(code string) string {
	r, ok := RegionByCode(code)
	if !ok {
		return BaseCurrency
	}
	return r.Currency
}
