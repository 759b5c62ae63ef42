// Package currency converts monetary amounts between the currencies of the
// supported markets and renders them for display. All stored amounts are
// denominated in the base currency; conversion happens at display time only.
package currency

// Pair is an ordered currency pair.
type Pair struct {
	From string
	To   string
}

// rates holds the directional conversion factors. Each direction is its own
// entry; reverse factors are never derived by inversion because the source
// data defines them independently and inversion changes precision.
var rates = map[Pair]float64{
	{From: "EUR", To: "CNY"}: 10,
	{From: "CNY", To: "EUR"}: 0.1,
}

// Rate returns the conversion factor for the ordered pair, reporting whether
// the pair is supported.
func Rate(from, to string) (float64, bool) {
	factor, ok := rates[Pair{From: from, To: to}]
	return factor, ok
}

// SupportedPairs enumerates the ordered pairs a conversion factor exists for.
func SupportedPairs() []Pair {
	pairs := make([]Pair, 0, len(rates))
	for p := range rates {
		pairs = append(pairs, p)
	}
	return pairs
}
