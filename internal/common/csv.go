// Package common provides the shared CSV output path: every command that
// writes normalized transactions back to disk goes through this file so the
// output format stays consistent.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"pocketledger/internal/logging"
	"pocketledger/internal/models"
)

// WriteTransactionsToCSV writes transactions to a CSV file in the normalized
// format, creating the parent directory when needed.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, delimiter rune, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	logger.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}
