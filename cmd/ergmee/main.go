// Command ergmee fits exponential random graph model parameters to a
// directed network via equilibrium expectation.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("ergmee: run failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
