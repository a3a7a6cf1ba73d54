package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/paineis"
)

// routesCmd prints the page table.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List pages and their charts",
	Long: `List every navigable route with its page title and chart slots.

Any path not listed here is served as the home page.`,
	Args: cobra.NoArgs,
	RunE: runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, args []string) error {
	d, err := paineis.New()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROUTE\tTITLE\tSLOTS")
	for _, p := range d.Pages() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Route, p.Title, strings.Join(p.SlotIDs(), ", "))
	}
	return w.Flush()
}
