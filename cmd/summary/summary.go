// Package summary handles the aggregation command
package summary

import (
	"github.com/spf13/cobra"

	"pocketledger/cmd/common"
	"pocketledger/cmd/root"
	"pocketledger/internal/currencyutils"
	"pocketledger/internal/summary"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Aggregate a CSV file into income/expense/category totals",
	Long: `Import a CSV file and print income, expenses, net, the per-category
expense breakdown, and the derived advisories.`,
	Run: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required (use --input)")
	}

	result, _, err := common.ImportFile(root.SharedFlags.Input, root.Logger)
	if err != nil {
		root.Log.Fatalf("Error importing CSV file: %v", err)
	}

	report := summary.BuildReport(summary.Summarize(result.Transactions))
	s := report.Summary

	root.Log.Infof("Transactions: %d", result.Imported)
	root.Log.Infof("Income:   %s", currencyutils.FormatAmount(s.Income))
	root.Log.Infof("Expenses: %s", currencyutils.FormatAmount(s.Expenses))
	root.Log.Infof("Net:      %s", currencyutils.FormatAmount(s.Net))
	for category, total := range s.ByCategory {
		root.Log.Infof("  %-15s %s", category, currencyutils.FormatAmount(total))
	}
	for _, advisory := range report.Advisories {
		root.Log.Infof("[%s] %s", advisory.Severity, advisory.Message)
	}
}
