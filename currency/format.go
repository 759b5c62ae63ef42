package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// policy fixes how a single currency is rendered. Formatting is
// currency-specific rather than generic: each supported currency carries the
// symbol, grouping locale and fraction rules its market expects.
type policy struct {
	symbol      string
	tag         language.Tag
	maxFraction int
	wholeUnits  bool
}

var policies = map[string]policy{
	"EUR": {symbol: "€", tag: language.BritishEnglish, maxFraction: 2},
	"CNY": {symbol: "¥", tag: language.SimplifiedChinese, wholeUnits: true},
}

// basePolicy is used for unknown currency codes so formatting stays total.
var basePolicy = policies["EUR"]

// Formatter renders amounts as display strings. It holds one message printer
// per currency locale; construction is cheap and the value is safe for
// concurrent use.
type Formatter struct {
	printers map[string]*message.Printer
}

// NewFormatter creates a formatter covering every currency with a policy.
func NewFormatter() *Formatter {
	printers := make(map[string]*message.Printer, len(policies))
	for code, p := range policies {
		printers[code] = message.NewPrinter(p.tag)
	}
	return &Formatter{printers: printers}
}

// Format renders amount in the given currency. Malformed amounts render as
// zero. Output is one-directional display text; no round trip back to a
// number is promised.
func (f *Formatter) Format(amount float64, currencyCode string) string {
	amount = Sanitize(amount)

	p, ok := policies[currencyCode]
	if !ok {
		p = basePolicy
		currencyCode = "EUR"
	}

	printer, ok := f.printers[currencyCode]
	if !ok {
		printer = message.NewPrinter(p.tag)
	}

	if p.wholeUnits {
		return printer.Sprintf("%s%v", p.symbol,
			number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
	}

	return printer.Sprintf("%s%v", p.symbol,
		number.Decimal(amount, number.MaxFractionDigits(p.maxFraction)))
}
