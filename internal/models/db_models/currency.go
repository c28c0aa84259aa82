package db_models

// Currency is the closed set of currencies a wallet or purchase can carry.
// The code/symbol mapping is fixed and round-trips through API responses.
type Currency string

const (
	CurrencyPesos   Currency = "PESOS"
	CurrencyDolares Currency = "DOLARES"
	CurrencyEuros   Currency = "EUROS"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyPesos, CurrencyDolares, CurrencyEuros:
		return true
	}
	return false
}

// Code returns the ISO style code, e.g. "ARS".
func (c Currency) Code() string {
	switch c {
	case CurrencyPesos:
		return "ARS"
	case CurrencyDolares:
		return "USD"
	case CurrencyEuros:
		return "EUR"
	}
	return ""
}

// Symbol returns the display symbol, e.g. "US$".
func (c Currency) Symbol() string {
	switch c {
	case CurrencyPesos:
		return "$"
	case CurrencyDolares:
		return "US$"
	case CurrencyEuros:
		return "€"
	}
	return ""
}

func (c Currency) String() string { return string(c) }
