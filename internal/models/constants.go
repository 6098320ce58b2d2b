package models

// Category names assigned by the keyword heuristic. The bank-supplied
// category, when present, always wins over these.
const (
	CategoryIncome        = "Income"
	CategoryHousing       = "Housing"
	CategoryGroceries     = "Groceries"
	CategoryGas           = "Gas"
	CategoryTransport     = "Transport"
	CategorySubscriptions = "Subscriptions"
	CategoryUtilities     = "Utilities"
	CategoryInternet      = "Internet"
	CategoryCoffee        = "Coffee"
	CategoryDining        = "Dining"
	CategoryUncategorized = "Uncategorized"
)

// PlaceholderName is substituted when the cleaned transaction name is empty.
const PlaceholderName = "(No description)"

// DateLength is the number of leading characters kept from a raw date
// string, a best-effort ISO-date prefix. The value is not validated as a
// real calendar date.
const DateLength = 10
