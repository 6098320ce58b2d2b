// Package common provides shared plumbing for the CLI commands: building a
// configured importer and running a file through it.
package common

import (
	"fmt"
	"os"

	"pocketledger/internal/config"
	"pocketledger/internal/importer"
	"pocketledger/internal/logging"
	"pocketledger/internal/models"
	"pocketledger/internal/schema"
)

// BuildImporter loads the configuration and schema extensions and returns a
// ready importer together with the resolved config.
func BuildImporter(logger logging.Logger) (*importer.Importer, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}

	ext, err := schema.LoadExtensions(cfg.Schema.ExtensionsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading schema extensions: %w", err)
	}

	return importer.New(schema.Default().Extend(ext), logger), cfg, nil
}

// ImportFile reads a CSV file from disk and runs it through the importer.
func ImportFile(path string, logger logging.Logger) (models.ImportResult, *config.Config, error) {
	imp, cfg, err := BuildImporter(logger)
	if err != nil {
		return models.ImportResult{}, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.ImportResult{}, nil, fmt.Errorf("error reading input file: %w", err)
	}

	result, err := imp.ImportCSV(string(data))
	if err != nil {
		return models.ImportResult{}, nil, err
	}
	return result, cfg, nil
}
