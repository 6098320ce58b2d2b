// Package currencyutils provides the amount-string normalization used by the
// importer. Bank exports disagree on how they print money: currency symbols,
// thousands separators, and accounting-style parenthesis negatives all occur
// in the wild.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// stripper removes the decorations that keep an amount string from parsing
// as a plain decimal.
var stripper = strings.NewReplacer("$", "", ",", "", "(", "", ")", "", " ", "")

// ParseAmount parses a raw amount string into a decimal value.
// Commas, dollar signs and parentheses are stripped before parsing. A value
// wrapped in parentheses ("(123.45)") denotes a negative number regardless
// of its literal digits. An empty or non-numeric string is an error; callers
// decide whether that drops the row or aborts the operation.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	negative := strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")")

	cleaned := stripper.Replace(trimmed)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", raw, err)
	}

	if negative {
		amount = amount.Abs().Neg()
	}
	return amount, nil
}

// FormatAmount renders a decimal amount with two decimal places for display
// and CSV output.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
