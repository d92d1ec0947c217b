package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jinxindev/simplybeam/internal/aci"
	"github.com/jinxindev/simplybeam/internal/config"
	"github.com/jinxindev/simplybeam/internal/diagram"
	"github.com/jinxindev/simplybeam/internal/llm"
	"github.com/jinxindev/simplybeam/internal/sizing"
	"github.com/jinxindev/simplybeam/internal/step"
	"github.com/spf13/cobra"
)

var (
	// Sizing inputs
	sizeSpan      float64
	sizeCondition string

	// Options
	sizeFeedback bool
)

var sizeDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Propose beam dimensions from span length",
	Long: `Calculate preliminary depth and width for a rectangular beam
from the clear span length.

The sizing follows ACI 318-19:
  - Table 9.3.1.1: Minimum depth (L/16 for simply supported spans)
  - Width selected from the practical band h/2 to 2h/3

Dimensions are rounded up to even inches.

Examples:
  # Size a 20 ft (240 in.) simply supported span
  simplybeam size design --span 240

  # Size and ask the LLM consultant for a review
  simplybeam size design --span 240 --feedback`,
	Run: runSizeDesign,
}

func init() {
	sizeCmd.AddCommand(sizeDesignCmd)

	sizeDesignCmd.Flags().Float64VarP(&sizeSpan, "span", "s", 0, "Clear span length (inches) [required]")
	sizeDesignCmd.Flags().StringVar(&sizeCondition, "condition", aci.SimplySupported,
		"Support condition (simply_supported, one_end_continuous, both_ends_continuous, cantilever)")
	sizeDesignCmd.Flags().BoolVar(&sizeFeedback, "feedback", false, "Request narrative feedback from the LLM consultant")

	sizeDesignCmd.MarkFlagRequired("span")
}

func runSizeDesign(cmd *cobra.Command, args []string) {
	designer := sizing.New()

	result, err := designer.Design(step.Params{
		"span_length":       sizeSpan,
		"support_condition": sizeCondition,
	})
	if err != nil {
		reportError(err)
		return
	}
	res := result.(*sizing.DesignResult)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PRELIMINARY BEAM SIZING - ACI 318-19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span Length (L):\t%.1f in.\n", sizeSpan)
	fmt.Fprintf(w, "  Support Condition:\t%s\n", sizeCondition)
	w.Flush()
	fmt.Println()

	fmt.Println("CALCULATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Minimum depth (%s):\t%.2f in.\n", res.Depth.Formula, res.Depth.Calculated)
	fmt.Fprintf(w, "  Design depth (rounded even):\t%d in.\n", res.Depth.Rounded)
	fmt.Fprintf(w, "  Width band (h/2 to 2h/3):\t%.1f - %.1f in.\n", res.Width.Min, res.Width.Max)
	fmt.Fprintf(w, "  Selected width:\t%d in.\n", res.Width.Recommended)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("FINAL DIMENSIONS", []string{
		fmt.Sprintf("Depth (h) = %d in.", res.FinalDimensions.Depth),
		fmt.Sprintf("Width (b) = %d in.", res.FinalDimensions.Width),
	}))
	fmt.Println()

	fmt.Println("EXPLANATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, line := range res.Explanations() {
		fmt.Printf("  • %s\n", line)
	}
	fmt.Println()

	if sizeFeedback {
		requestFeedback(res)
	}
}

// requestFeedback forwards the sizing result to the LLM consultant and
// prints whatever it says. Failures are reported, never retried.
func requestFeedback(res step.Result) {
	apiKey, err := config.LoadAPIKey()
	if err != nil {
		fmt.Printf("Feedback unavailable: %v\n", err)
		return
	}

	ctx := context.Background()
	consultant, err := llm.NewConsultant(ctx, apiKey)
	if err != nil {
		fmt.Printf("Feedback unavailable: %v\n", err)
		return
	}
	defer consultant.Close()

	fmt.Println("CONSULTANT REVIEW:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	feedback, err := consultant.ReviewSizing(ctx, res)
	if err != nil {
		fmt.Printf("  Feedback request failed: %v\n", err)
		return
	}
	fmt.Println(feedback)
	fmt.Println()
}
