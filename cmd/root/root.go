// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pocketledger/internal/config"
	"pocketledger/internal/logging"
)

// CommonFlags represents the flags shared by multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logrus instance for commands
	Log = logrus.New()

	// Logger is the structured logging facade handed to the engine packages
	Logger logging.Logger = logging.NewLogrusAdapterFromLogger(Log)

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pocketledger",
		Short: "Ingest, categorize and summarize personal financial transactions.",
		Long: `pocketledger ingests transactions from bank CSV exports or manual entry,
normalizes them into a canonical record, assigns a spending category, and
computes income/expense/net summaries on demand.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pocketledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			Logger = logging.NewLogrusAdapterFromLogger(Log)
		},
	}

	// SharedFlags holds common flag values accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific categorize command flags
	Name   string
	Amount string
)

// Init initializes the root command flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
