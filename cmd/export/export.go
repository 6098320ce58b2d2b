// Package export handles writing normalized transactions back to CSV
package export

import (
	"github.com/spf13/cobra"

	cmdcommon "pocketledger/cmd/common"
	"pocketledger/cmd/root"
	"pocketledger/internal/common"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Normalize a CSV file and write it in the canonical format",
	Long: `Import a bank CSV export and write the normalized transactions
(id, date, name, signed amount, category) to the output file.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	result, cfg, err := cmdcommon.ImportFile(root.SharedFlags.Input, root.Logger)
	if err != nil {
		root.Log.Fatalf("Error importing CSV file: %v", err)
	}

	if err := common.WriteTransactionsToCSV(result.Transactions, root.SharedFlags.Output, cfg.Delimiter(), root.Logger); err != nil {
		root.Log.Fatalf("Error writing CSV file: %v", err)
	}
	root.Log.Infof("Wrote %d normalized transactions to %s", result.Imported, root.SharedFlags.Output)
}
