package importer

import (
	"strings"

	"github.com/shopspring/decimal"

	"pocketledger/internal/categorizer"
	"pocketledger/internal/currencyutils"
	"pocketledger/internal/models"
)

// creditKeywords mark an imported row as incoming money when they appear in
// the cleaned name. Bank CSV exports rarely carry an explicit sign
// convention, so imports default to expense unless one of these fires.
var creditKeywords = []string{"payment", "credit", "refund", "returned", "return"}

// Build produces a finalized Transaction from a canonical row. The amount
// string is normalized and the sign inferred; rows whose amount does not
// parse as a number are rejected with an error, which the import loop treats
// as a silent skip.
func Build(row CanonicalRow) (models.Transaction, error) {
	name := strings.TrimSpace(row.Name)

	amount, err := currencyutils.ParseAmount(row.Amount)
	if err != nil {
		return models.Transaction{}, err
	}

	// Imported rows carry only a magnitude; the sign comes from the credit
	// heuristic. This is asymmetric with manual entry on purpose.
	if looksLikeCredit(name, row.BankCategory) {
		amount = amount.Abs()
	} else {
		amount = amount.Abs().Neg()
	}

	category := resolveCategory(row.BankCategory, name, amount)

	if name == "" {
		name = models.PlaceholderName
	}

	return models.NewTransaction(cleanDate(row.Date), name, amount, category), nil
}

// BuildManual produces a Transaction from an explicit manual entry. The
// caller supplies the signed amount directly; no sign inference is applied.
func BuildManual(date, name string, amount decimal.Decimal) models.Transaction {
	cleaned := strings.TrimSpace(name)
	category := resolveCategory("", cleaned, amount)
	if cleaned == "" {
		cleaned = models.PlaceholderName
	}
	return models.NewTransaction(cleanDate(date), cleaned, amount, category)
}

// looksLikeCredit reports whether an imported row represents incoming money:
// the cleaned name contains a credit keyword, or the bank-supplied category
// mentions payment or credit. Matching is case-insensitive.
func looksLikeCredit(name, bankCategory string) bool {
	loweredName := strings.ToLower(name)
	for _, keyword := range creditKeywords {
		if strings.Contains(loweredName, keyword) {
			return true
		}
	}

	loweredCategory := strings.ToLower(bankCategory)
	return strings.Contains(loweredCategory, "payment") || strings.Contains(loweredCategory, "credit")
}

// resolveCategory picks the transaction category: a non-empty bank-supplied
// category wins verbatim (trimmed); otherwise the keyword heuristic runs
// against a non-empty name; an empty name resolves to Uncategorized without
// invoking the heuristic.
func resolveCategory(bankCategory, name string, amount decimal.Decimal) string {
	if trimmed := strings.TrimSpace(bankCategory); trimmed != "" {
		return trimmed
	}
	if name != "" {
		return categorizer.Categorize(name, amount)
	}
	return models.CategoryUncategorized
}

// cleanDate keeps the first 10 characters of the raw date string as a
// best-effort ISO-date prefix. The prefix is taken verbatim, with no
// trimming or calendar validation.
func cleanDate(raw string) string {
	runes := []rune(raw)
	if len(runes) > models.DateLength {
		runes = runes[:models.DateLength]
	}
	return string(runes)
}
