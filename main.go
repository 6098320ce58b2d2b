package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pocketledger/cmd/categorize"
	"pocketledger/cmd/export"
	"pocketledger/cmd/ingest"
	"pocketledger/cmd/root"
	"pocketledger/cmd/serve"
	"pocketledger/cmd/summary"
)

func init() {
	// Load environment variables silently before any logging happens.
	loadEnvSilently()

	// Configure the global log level so every logger picks it up.
	configureLogLevel()

	root.Init()

	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the global logrus level from LOG_LEVEL
func configureLogLevel() {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}

	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		level = logrus.InfoLevel
	}

	logrus.SetLevel(level)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
