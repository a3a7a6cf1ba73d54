// Package main is the entry point for the paineis CLI.
//
// Usage:
//
//	paineis serve [-c config.yaml]     # Start the dashboard
//	paineis validate -c config.yaml    # Validate configuration
//	paineis routes                     # List pages and their charts
//	paineis render /vendas             # Print one page's charts as JSON
//	paineis version                    # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "paineis",
	Short: "A multi-page analytics dashboard",
	Long: `paineis serves a small multi-page analytics dashboard.

Each page (Início, Vendas, Operações) shows a fixed set of charts built from
synthetic data. Only the charts of the page being viewed are computed.

Quick start:
  1. Run: paineis serve
  2. Open http://localhost:8050 in your browser

Example config:
  title: Painéis Angela Leitte
  port: 8050
  seed: 42`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this paineis binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "paineis %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
