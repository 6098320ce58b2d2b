// Package schema holds the column-name alias tables that map heterogeneous
// bank export headers onto the canonical field set. The alias lists are
// ordered: for each canonical field the first present, non-empty column wins.
// The lists are data, not code: new source formats extend them via an
// optional YAML extensions file without touching the normalizer.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema is the ordered alias table for one import. The built-in defaults
// cover the generic lowercase headers plus the known bank export variants.
type Schema struct {
	DateAliases     []string
	NameAliases     []string
	AmountAliases   []string
	CategoryAliases []string
}

// Default returns the built-in alias table. Order matters: earlier aliases
// take priority when a row carries several candidate columns.
func Default() Schema {
	return Schema{
		DateAliases:     []string{"date", "Date", "TransactionDate", "Transaction Date", "Trans. Date"},
		NameAliases:     []string{"name", "Description", "Name", "Merchant", "Merchant Name"},
		AmountAliases:   []string{"amount", "Amount", "Transaction Amount", "Amount (USD)"},
		CategoryAliases: []string{"Category"},
	}
}

// Extensions are extra aliases appended after the defaults, loaded from a
// YAML file so deployments can teach the importer new export formats.
type Extensions struct {
	Date     []string `yaml:"date"`
	Name     []string `yaml:"name"`
	Amount   []string `yaml:"amount"`
	Category []string `yaml:"category"`
}

// LoadExtensions reads an alias extensions file. A missing path is not an
// error; it simply yields empty extensions.
func LoadExtensions(path string) (Extensions, error) {
	var ext Extensions
	if path == "" {
		return ext, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ext, nil
		}
		return ext, fmt.Errorf("error reading schema extensions file: %w", err)
	}

	if err := yaml.Unmarshal(data, &ext); err != nil {
		return ext, fmt.Errorf("error parsing schema extensions file: %w", err)
	}
	return ext, nil
}

// Extend returns a copy of the schema with the extension aliases appended
// after the built-in ones, preserving default priority.
func (s Schema) Extend(ext Extensions) Schema {
	out := Schema{
		DateAliases:     append(append([]string{}, s.DateAliases...), ext.Date...),
		NameAliases:     append(append([]string{}, s.NameAliases...), ext.Name...),
		AmountAliases:   append(append([]string{}, s.AmountAliases...), ext.Amount...),
		CategoryAliases: append(append([]string{}, s.CategoryAliases...), ext.Category...),
	}
	return out
}
