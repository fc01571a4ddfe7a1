// Package main provides the entry point for the advert generator.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "advert_generator",
	Short:        "Shapr3D job advert generator",
	Long:         "Advert generator turns a job title, location and raw hiring notes into a formatted markdown job advert using Google Gemini.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
