package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Jaruso/bareclaw/internal/cli"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment variables")
	}
}

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
