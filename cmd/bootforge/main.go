// Package main provides the bootforge CLI tool entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command structure
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Exit codes and user-friendly error messages
//   - Performance Notes: Fast startup, minimal memory footprint
//
// Usage:
//
//	bootforge [command] [flags]
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/forgebyte/bootforge/internal/ui"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
	configPath     string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bootforge",
	Short: "Spring Boot project scaffolding tool",
	Long: `Bootforge scaffolds new Spring Boot projects from the command line.

This tool provides commands for:
- Creating new projects through the Spring Boot CLI generator
- Browsing the Spring Initializr dependency catalog
- Diagnosing the local development environment

Project parameters are collected interactively or supplied as flags;
defaults are overridable through a small YAML configuration file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.SetNonInteractive(nonInteractive)
		ui.SetJSONOutput(jsonOutput)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
//
// Parameters:
//   - None (uses global variables)
//
// Returns:
//   - None (exits with appropriate code)
//
// Concurrency:
//   - Single-threaded execution
//
// Performance:
//   - Fast command resolution and execution
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("Command failed: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file path")

	// Add version flags (--version and -v)
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
}

// main is the entry point for the bootforge CLI tool.
func main() {
	Execute()
}
