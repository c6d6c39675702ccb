package main

import (
	"log/slog"
	"os"
)

func main() {
	// Cobra handles parsing; errors are logged once here, not echoed twice.
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
