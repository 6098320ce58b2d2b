// Package categorize handles one-off transaction categorization
package categorize

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"pocketledger/cmd/root"
	"pocketledger/internal/categorizer"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long:  `Run the keyword heuristic against a transaction name and signed amount.`,
	Run:   categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Name, "name", "n", "", "Transaction name to categorize")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "0", "Signed transaction amount")
	if err := Cmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	amount, err := decimal.NewFromString(root.Amount)
	if err != nil {
		root.Log.Fatalf("Invalid amount %q: %v", root.Amount, err)
	}

	category := categorizer.Categorize(root.Name, amount)
	root.Log.Infof("Transaction categorized as: %s", category)
}
