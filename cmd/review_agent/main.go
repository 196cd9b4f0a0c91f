// Package main provides the entry point for the Manuscript Reviewer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "review_agent",
	Short: "Manuscript Reviewer HTTP API server and CLI",
	Long:  "Manuscript Reviewer assigns quality scores to academic manuscripts along five dimensions, using either a rule-based heuristic engine or an LLM-backed reviewer.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
