package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/paineis"
	"github.com/jpalmerr/paineis/config"
)

// validateCmd validates a config file without starting the server.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a paineis configuration file without starting the server.

This command parses the YAML, expands environment variables, validates all
fields and builds the dashboard, so chart binding errors are reported too.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  paineis validate -c paineis.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	d, err := paineis.New(config.BuildOptions(cfg, nil)...)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	slots := 0
	for _, p := range d.Pages() {
		slots += len(p.Slots)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid!\n")
	fmt.Fprintf(out, "  Address: %s\n", d.Addr())
	fmt.Fprintf(out, "  Seed:    %d\n", d.Seed())
	fmt.Fprintf(out, "  Pages:   %d (%d charts)\n", len(d.Pages()), slots)

	return nil
}
