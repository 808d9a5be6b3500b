// Package main provides the entry point for the quotation ingestion CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quote_loader",
	Short: "Quotation ingestion pipeline",
	Long:  "quote_loader harvests quotations and idioms from curated lists, public APIs, and scraped sites, validates and deduplicates them, translates them between English and Russian, and persists them into PostgreSQL.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
