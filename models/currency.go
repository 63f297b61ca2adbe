package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies are the currencies PayPal rejects decimal amounts for
var zeroDecimalCurrencies = map[string]bool{
	"HUF": true,
	"JPY": true,
	"TWD": true,
}

// CurrencyDecimals returns the number of decimal places PayPal accepts for a currency
func CurrencyDecimals(currency string) int32 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return 0
	}
	return 2
}

// FormatAmount formats an amount with the decimal places of its currency
func FormatAmount(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(CurrencyDecimals(currency))
}
