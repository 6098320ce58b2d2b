// Package importer turns raw CSV rows into finalized transactions. It is the
// core of the ingestion engine: the normalizer maps inconsistently-named
// columns onto a canonical field set, and the builder resolves the amount
// sign and category before minting the record. The package holds no state
// between calls; the caller owns the resulting collection.
package importer

import (
	"pocketledger/internal/schema"
)

// CanonicalRow is the normalized field set extracted from one raw tabular
// row, independent of the source format's column naming. Empty string means
// the field was absent from the row.
type CanonicalRow struct {
	Date         string
	Name         string
	Amount       string
	BankCategory string
}

// Normalize resolves a loosely-typed row against the schema's alias lists
// and returns the canonical field set. The second return value is false when
// the row is unusable: both the date and the amount failed to resolve. Such
// rows are skipped silently by the import loop, never surfaced as errors;
// a multi-row import must tolerate a minority of malformed rows.
func Normalize(row map[string]string, s schema.Schema) (CanonicalRow, bool) {
	canonical := CanonicalRow{
		Date:         firstPresent(row, s.DateAliases),
		Name:         firstPresent(row, s.NameAliases),
		Amount:       firstPresent(row, s.AmountAliases),
		BankCategory: firstPresent(row, s.CategoryAliases),
	}

	if canonical.Date == "" && canonical.Amount == "" {
		return CanonicalRow{}, false
	}
	return canonical, true
}

// firstPresent returns the value of the first alias present in the row with
// a non-empty value.
func firstPresent(row map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if value, ok := row[alias]; ok && value != "" {
			return value
		}
	}
	return ""
}
