// Package ingest handles the CSV import command
package ingest

import (
	"github.com/spf13/cobra"

	"pocketledger/cmd/common"
	"pocketledger/cmd/root"
	"pocketledger/internal/currencyutils"
)

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Import transactions from a CSV file",
	Long: `Import transactions from a bank CSV export. Column names are resolved
against the known alias table; rows missing both a date and an amount are
skipped silently.`,
	Run: ingestFunc,
}

func ingestFunc(cmd *cobra.Command, args []string) {
	root.Log.Infof("Ingesting CSV file: %s", root.SharedFlags.Input)

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required (use --input)")
	}

	result, _, err := common.ImportFile(root.SharedFlags.Input, root.Logger)
	if err != nil {
		root.Log.Fatalf("Error importing CSV file: %v", err)
	}

	root.Log.Infof("Imported %d transactions", result.Imported)
	for _, tx := range result.Sample {
		root.Log.Infof("  %s  %-30s  %10s  %s",
			tx.Date, tx.Name, currencyutils.FormatAmount(tx.Amount), tx.Category)
	}
}
