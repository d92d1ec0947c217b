package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jinxindev/simplybeam/internal/step"
	"github.com/jinxindev/simplybeam/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "simplybeam",
	Short: "Preliminary RC Beam Design Tool",
	Long: `simplybeam - Simply Supported RC Beam Designer

A CLI tool for preliminary design of simply supported reinforced
concrete beams based on ACI 318-19.

The design pipeline consists of three steps:
  - Preliminary sizing (minimum depth and width from span length)
  - Load combination analysis (ACI 318-19 Table 5.3.1)
  - Structural analysis (reactions, shear and moment diagrams)

Each step can also request narrative feedback on its results from an
LLM design consultant.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   simplybeam v%-44s║\n", version.Version)
		fmt.Println("  ║   Simply Supported RC Beam Designer                       ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Preliminary design of simply supported reinforced concrete")
		fmt.Println("  beams based on ACI 318-19.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Preliminary member sizing per ACI 318-19 Table 9.3.1.1")
		fmt.Println("    • Factored load calculation using ACI load combinations")
		fmt.Println("    • Shear and moment diagrams for uniformly loaded spans")
		fmt.Println("    • Optional LLM review of design results")
		fmt.Println()
		fmt.Println("  Use 'simplybeam --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// reportError prints a step failure in a human-readable form, classified
// by error kind. Anything outside the taxonomy is reported as unexpected.
func reportError(err error) {
	var inputErr *step.InputError
	var designErr *step.DesignError
	var verifyErr *step.VerificationError

	switch {
	case errors.As(err, &designErr):
		fmt.Printf("Design error [%s]: %s\n", designErr.Step, designErr.Message)
	case errors.As(err, &verifyErr):
		fmt.Printf("Verification error [%s]: %s\n", verifyErr.Step, verifyErr.Message)
	case errors.As(err, &inputErr):
		fmt.Printf("Input error [%s]: %s\n", inputErr.Param, inputErr.Message)
	default:
		fmt.Printf("Unexpected error: %v\n", err)
	}
}
