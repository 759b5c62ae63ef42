package currency

import "math"

// Sanitize coerces malformed amounts to zero. Money displays must never
// fail on bad upstream data, so NaN and infinities collapse to 0 at the
// package boundary.
func Sanitize(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// Convert converts amount from one currency to another using the rate table.
// Equal currency codes and unsupported pairs both return the amount
// unchanged; callers render the result directly so there is no error path.
// No rounding happens here, that is a display concern.
func Convert(amount float64, from, to string) float64 {
	amount = Sanitize(amount)

	if from == to {
		return amount
	}

	factor, ok := Rate(from, to)
	if !ok {
		return amount
	}

	return amount * factor
}
