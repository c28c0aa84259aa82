package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyMapping(t *testing.T) {
	cases := []struct {
		currency Currency
		code     string
		symbol   string
	}{
		{CurrencyPesos, "ARS", "$"},
		{CurrencyDolares, "USD", "US$"},
		{CurrencyEuros, "EUR", "€"},
	}
	for _, c := range cases {
		assert.True(t, c.currency.Valid())
		assert.Equal(t, c.code, c.currency.Code())
		assert.Equal(t, c.symbol, c.currency.Symbol())
	}
}

func TestCurrencyInvalid(t *testing.T) {
	for _, raw := range []string{"", "YEN", "pesos", "USD"} {
		c := Currency(raw)
		assert.False(t, c.Valid(), raw)
		assert.Empty(t, c.Code())
		assert.Empty(t, c.Symbol())
	}
}
