// Package serve handles the HTTP server command
package serve

import (
	"github.com/spf13/cobra"

	"pocketledger/cmd/common"
	"pocketledger/cmd/root"
	"pocketledger/internal/server"
	"pocketledger/internal/store"
)

var port string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server exposing manual entry, CSV upload, summary and
insights endpoints over an in-memory transaction store.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides configuration)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	imp, cfg, err := common.BuildImporter(root.Logger)
	if err != nil {
		root.Log.Fatalf("Error building importer: %v", err)
	}

	listenPort := cfg.Server.Port
	if port != "" {
		listenPort = port
	}

	srv := server.New(store.NewMemoryStore(), imp, root.Logger)
	if err := srv.Run(listenPort); err != nil {
		root.Log.Fatalf("Server failed: %v", err)
	}
}
