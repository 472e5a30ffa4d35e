package main

import (
	"os"

	"github.com/quantfold/marketdata/cmd/marketdata/commands"
)

// main is the entry point for the marketdata CLI:
// go run ./cmd/marketdata [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
