// Package categorizer assigns a spending category to a transaction that
// arrived without a bank-supplied category. Matching is a fixed, ordered
// keyword heuristic: rules are evaluated top to bottom and the first match
// wins. The order is deliberate: keyword sets overlap across categories, so
// reordering the rules changes behavior.
package categorizer

import (
	"strings"

	"github.com/shopspring/decimal"

	"pocketledger/internal/models"
)

// rule pairs a category with the lower-cased keywords that select it.
type rule struct {
	category string
	keywords []string
}

// rules is evaluated in order; keep it as data so new keywords extend the
// heuristic without restructuring the matching logic.
var rules = []rule{
	{models.CategoryHousing, []string{"rent"}},
	{models.CategoryGroceries, []string{"grocery", "supermarket", "trader", "whole foods"}},
	{models.CategoryGas, []string{"gas", "shell", "exxon", "bp"}},
	{models.CategoryTransport, []string{"uber", "lyft", "taxi"}},
	{models.CategorySubscriptions, []string{"netflix", "spotify", "hulu", "disney"}},
	{models.CategoryUtilities, []string{"electric", "utility", "water", "coned", "pseg"}},
	{models.CategoryInternet, []string{"internet", "verizon", "optimum", "comcast"}},
	{models.CategoryCoffee, []string{"coffee", "starbucks", "dunkin"}},
	{models.CategoryDining, []string{"chipotle", "mcdonald", "restaurant", "pizza"}},
}

// Categorize returns the category label for a cleaned, non-empty name and a
// resolved signed amount. Any positive amount is income regardless of the
// name. Matching against the name is case-insensitive substring containment.
// When nothing matches, the result is CategoryUncategorized.
func Categorize(name string, amount decimal.Decimal) string {
	if amount.IsPositive() {
		return models.CategoryIncome
	}

	lowered := strings.ToLower(name)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lowered, keyword) {
				return r.category
			}
		}
	}
	return models.CategoryUncategorized
}
