package cmd

import (
	"github.com/spf13/cobra"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Preliminary member sizing per ACI 318-19",
	Long: `Propose or verify beam dimensions for a simply supported span
based on ACI 318-19 Table 9.3.1.1 minimum depths.

Subcommands:
  design   - Propose depth and width from span length
  verify   - Check provided dimensions against code minimums

Depths and widths are rounded up to even inches for constructability.`,
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
