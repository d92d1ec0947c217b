package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jinxindev/simplybeam/internal/sizing"
	"github.com/jinxindev/simplybeam/internal/step"
	"github.com/spf13/cobra"
)

var (
	verifySpan  float64
	verifyDepth float64
	verifyWidth float64
)

var sizeVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check provided dimensions against ACI minimums",
	Long: `Verify a proposed beam section against ACI 318-19 requirements:
  - Depth: at least L/16 (Table 9.3.1.1, simply supported)
  - Width: within the practical band h/2 to 2h/3

Examples:
  # Check a 20x10 in. section on a 240 in. span
  simplybeam size verify --span 240 --depth 20 --width 10`,
	Run: runSizeVerify,
}

func init() {
	sizeCmd.AddCommand(sizeVerifyCmd)

	sizeVerifyCmd.Flags().Float64VarP(&verifySpan, "span", "s", 0, "Clear span length (inches) [required]")
	sizeVerifyCmd.Flags().Float64VarP(&verifyDepth, "depth", "d", 0, "Proposed overall depth (inches) [required]")
	sizeVerifyCmd.Flags().Float64VarP(&verifyWidth, "width", "b", 0, "Proposed width (inches) [required]")

	sizeVerifyCmd.MarkFlagRequired("span")
	sizeVerifyCmd.MarkFlagRequired("depth")
	sizeVerifyCmd.MarkFlagRequired("width")
}

func runSizeVerify(cmd *cobra.Command, args []string) {
	designer := sizing.New()

	verification, err := designer.Verify(step.Params{
		"span_length": verifySpan,
		"depth":       verifyDepth,
		"width":       verifyWidth,
	})
	if err != nil {
		reportError(err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SECTION VERIFICATION - ACI 318-19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tRequired\tStatus\n")
	fmt.Fprintf(w, "  ─────\t────────\t──────\n")
	for _, name := range []string{"depth", "width"} {
		check := verification.Checks[name]
		fmt.Fprintf(w, "  %s\t%s\t%s\n", name, check.Required, check.Status)
	}
	w.Flush()
	fmt.Println()

	if verification.Passed {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  SECTION OK - All requirements met      ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  SECTION NOT ADEQUATE                   ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		fmt.Printf("  %s\n", verification.Message)
	}
	fmt.Println()
}
