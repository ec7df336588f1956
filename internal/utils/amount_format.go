package utils

import (
	"github.com/shopspring/decimal"
)

// FormatINR renders an amount for display in rupees, rounded to whole units
// with the currency symbol prefixed.
func FormatINR(amount decimal.Decimal) string {
	return "₹" + amount.Round(0).String()
}

// FormatWithPrecision renders an amount rounded to the given number of
// decimal places.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
