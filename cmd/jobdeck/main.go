// Package main provides the entry point for the jobdeck HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobdeck",
	Short: "Job board HTTP API server",
	Long:  "Jobdeck serves a mobile job board: seekers browse, search, save, and apply to listings; employers post jobs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
