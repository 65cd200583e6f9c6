// Package main provides the entry point for the resume builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Local-first resume builder",
	Long: `Resume Builder manages a collection of resume documents on your machine:
structured editing, selectable visual templates, and print-ready PDF export.
All state lives in a local snapshot file; no server is involved.`,
}

var (
	rootConfigPath  string
	rootStoragePath string
	rootChromePath  string
	rootVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&rootStoragePath, "storage", "", "Path to the resume snapshot file (defaults to RESUME_STORAGE_PATH or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&rootChromePath, "chrome-path", "", "Chrome/Chromium binary for PDF export (defaults to CHROME_PATH env var)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed document summaries")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
