// Package summary computes aggregate views over a transaction collection.
// Aggregation is a single pass, order-independent, and never fails: an empty
// collection yields all-zero totals.
package summary

import (
	"github.com/shopspring/decimal"

	"pocketledger/internal/models"
)

// Summary holds the income/expense/net totals and the per-category expense
// breakdown. ByCategory accumulates expense magnitudes only, never income.
type Summary struct {
	Income     decimal.Decimal            `json:"income"`
	Expenses   decimal.Decimal            `json:"expenses"`
	Net        decimal.Decimal            `json:"net"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
}

// Summarize aggregates the full transaction collection. Positive amounts add
// to income; everything else adds its magnitude to expenses and to the
// category bucket. Zero amounts fall on the expense side but contribute
// nothing beyond a zero-valued bucket entry.
func Summarize(transactions []models.Transaction) Summary {
	s := Summary{
		Income:     decimal.Zero,
		Expenses:   decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
	}

	for _, tx := range transactions {
		if tx.Amount.IsPositive() {
			s.Income = s.Income.Add(tx.Amount)
			continue
		}

		magnitude := tx.Amount.Abs()
		s.Expenses = s.Expenses.Add(magnitude)

		category := tx.Category
		if category == "" {
			category = models.CategoryUncategorized
		}
		s.ByCategory[category] = s.ByCategory[category].Add(magnitude)
	}

	s.Net = s.Income.Sub(s.Expenses)
	return s
}
