package importer

import (
	"encoding/csv"
	"strings"

	"pocketledger/internal/logging"
	"pocketledger/internal/models"
	"pocketledger/internal/schema"
)

// SampleSize is the number of created records echoed back to the caller for
// display after an import.
const SampleSize = 5

// Importer is the CSV document entry point. It carries the alias schema and
// a logger but no mutable state; every import is independent.
type Importer struct {
	schema schema.Schema
	logger logging.Logger
}

// New creates an Importer with the given alias schema.
func New(s schema.Schema, logger logging.Logger) *Importer {
	return &Importer{schema: s, logger: logger}
}

// ImportCSV parses a decoded CSV document body (first row is the header) and
// builds transactions from its rows. Rows failing normalization or amount
// parsing are skipped silently and reflected only in a lower imported count.
// A body that cannot be parsed as tabular text returns an
// InvalidDocumentError and no partial result.
func (imp *Importer) ImportCSV(body string) (models.ImportResult, error) {
	reader := csv.NewReader(strings.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return models.ImportResult{}, &InvalidDocumentError{Reason: "unparsable tabular text", Err: err}
	}
	if len(records) == 0 {
		return models.ImportResult{}, &InvalidDocumentError{Reason: "empty document, header row required"}
	}

	header := records[0]
	var created []models.Transaction
	skipped := 0

	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}

		canonical, ok := Normalize(row, imp.schema)
		if !ok {
			skipped++
			continue
		}

		tx, err := Build(canonical)
		if err != nil {
			imp.logger.WithError(err).Debug("Dropping row with unusable amount",
				logging.Field{Key: logging.FieldRow, Value: row})
			skipped++
			continue
		}

		created = append(created, tx)
	}

	imp.logger.Info("Imported CSV document",
		logging.Field{Key: logging.FieldCount, Value: len(created)},
		logging.Field{Key: logging.FieldSkipped, Value: skipped})

	sample := created
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}

	return models.ImportResult{
		Imported:     len(created),
		Sample:       sample,
		Transactions: created,
	}, nil
}
