package currency_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voyago/locale/currency"
)

func TestFormatterEUR(t *testing.T) {
	f := currency.NewFormatter()

	testCases := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "whole amount drops fraction", amount: 100, want: "€100"},
		{name: "two fraction digits kept", amount: 99.99, want: "€99.99"},
		{name: "single fraction digit kept", amount: 1234.5, want: "€1,234.5"},
		{name: "fraction rounded to two digits", amount: 10.999, want: "€11"},
		{name: "zero", amount: 0, want: "€0"},
		{name: "nan renders as zero", amount: math.NaN(), want: "€0"},
		{name: "grouping applied", amount: 1000000, want: "€1,000,000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Format(tc.amount, "EUR"))
		})
	}
}

func TestFormatterCNY(t *testing.T) {
	f := currency.NewFormatter()

	testCases := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "whole units with grouping", amount: 1000, want: "¥1,000"},
		{name: "rounds up to whole unit", amount: 999.5, want: "¥1,000"},
		{name: "rounds down to whole unit", amount: 12.3, want: "¥12"},
		{name: "zero", amount: 0, want: "¥0"},
		{name: "infinity renders as zero", amount: math.Inf(1), want: "¥0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Format(tc.amount, "CNY"))
		})
	}
}

func TestFormatterUnknownCurrencyFallsBackToBase(t *testing.T) {
	f := currency.NewFormatter()

	assert.Equal(t, "€42", f.Format(42, "USD"))
	assert.Equal(t, "€42", f.Format(42, ""))
}
