package cmd

import (
	"fmt"

	"github.com/jinxindev/simplybeam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of simplybeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("simplybeam v%s\n", version.Version)
		fmt.Println("Preliminary RC Beam Design Tool")
		fmt.Println("Based on ACI 318-19 (Building Code Requirements for Structural Concrete)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
