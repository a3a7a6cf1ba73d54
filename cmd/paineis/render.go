package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/paineis"
	"github.com/jpalmerr/paineis/config"
	"github.com/jpalmerr/paineis/internal/server"
)

// renderCmd renders one page without starting the server.
var renderCmd = &cobra.Command{
	Use:   "render <path>",
	Short: "Print one page's charts as JSON",
	Long: `Render the page for <path> and print every chart slot as JSON, in the
same form served by /api/page. Slots not on the page are empty placeholders.

Example:
  paineis render /operacoes
  paineis render -c paineis.yaml /vendas`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("config", "c", "", "path to config file")
}

func runRender(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	d, err := paineis.New(config.BuildOptions(cfg, logger)...)
	if err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}

	result := d.Navigate("", args[0])
	if failed := result.Failed(); len(failed) > 0 {
		logger.Warn("some charts failed", "count", len(failed))
	}
	return server.EncodePage(cmd.OutOrStdout(), result)
}
