package cmd

import (
	"fmt"

	"github.com/jinxindev/simplybeam/internal/analysis"
	"github.com/jinxindev/simplybeam/internal/diagram"
	"github.com/jinxindev/simplybeam/internal/loads"
	"github.com/jinxindev/simplybeam/internal/sizing"
	"github.com/jinxindev/simplybeam/internal/step"
	"github.com/spf13/cobra"
)

var (
	pipelineSpanIn float64
	pipelinePoints int
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the full design pipeline: sizing, loads, analysis",
	Long: `Chain the three design steps for a simply supported beam:

  1. Preliminary sizing proposes depth and width from the span.
  2. Load analysis picks the controlling ACI 318-19 combination.
  3. Structural analysis computes reactions, shear and moment using the
     controlling factored load.

Span is given in inches (as used for sizing) and converted to feet for
the structural analysis. Load flags match the 'loads' command.

Examples:
  # 20 ft span, dead + live + wind
  simplybeam pipeline --span-in 240 --dead 2.5 --live 1.8 --wind 4.2`,
	Run: runPipeline,
}

func init() {
	rootCmd.AddCommand(pipelineCmd)

	pipelineCmd.Flags().Float64Var(&pipelineSpanIn, "span-in", 0, "Clear span length (inches) [required]")
	pipelineCmd.Flags().IntVarP(&pipelinePoints, "points", "n", analysis.DefaultNumPoints, "Number of diagram sample points (>= 2)")

	// Shared load flags (same variables as the loads command)
	pipelineCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Dead load D (kip/ft) [required]")
	pipelineCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Live load L (kip/ft)")
	pipelineCmd.Flags().Float64VarP(&loadRoof, "roof", "r", 0, "Roof live load Lr (kip/ft)")
	pipelineCmd.Flags().Float64Var(&loadSnow, "snow", 0, "Snow load S (kip/ft)")
	pipelineCmd.Flags().Float64VarP(&loadRain, "rain", "R", 0, "Rain load R (kip/ft)")
	pipelineCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Wind load W (kip/ft)")
	pipelineCmd.Flags().Float64VarP(&loadSeismic, "seismic", "e", 0, "Seismic load E (kip/ft)")

	pipelineCmd.MarkFlagRequired("span-in")
	pipelineCmd.MarkFlagRequired("dead")
}

func runPipeline(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     DESIGN PIPELINE - SIMPLY SUPPORTED RC BEAM")
	fmt.Println("═══════════════════════════════════════════════════════════════")

	// Step 1: sizing
	sizeResult, err := sizing.New().Design(step.Params{"span_length": pipelineSpanIn})
	if err != nil {
		reportError(err)
		return
	}
	dims := sizeResult.(*sizing.DesignResult).FinalDimensions

	fmt.Println()
	fmt.Printf("STEP 1 — PRELIMINARY SIZING: h = %d in., b = %d in.\n", dims.Depth, dims.Width)

	// Step 2: load combinations
	loadResult, err := loads.New().Design(loadParams(cmd))
	if err != nil {
		reportError(err)
		return
	}
	controlling := loadResult.(*loads.DesignResult).Controlling

	fmt.Printf("STEP 2 — LOAD ANALYSIS: controlling %s, wu = %.2f kip/ft\n",
		controlling.Combination, controlling.Value)

	// Step 3: structural analysis with the controlling load; span in feet.
	spanFt := pipelineSpanIn / 12
	params := step.Params{
		"span_length":   spanFt,
		"factored_load": controlling.Value,
	}
	if cmd.Flags().Changed("points") {
		params["num_points"] = pipelinePoints
	}
	analysisResult, err := analysis.New().Design(params)
	if err != nil {
		reportError(err)
		return
	}
	res := analysisResult.(*analysis.DesignResult)

	fmt.Printf("STEP 3 — STRUCTURAL ANALYSIS: R = %.2f kip, Mmax = %.2f kip-ft\n",
		res.Reactions.Ra, res.Maxima.Moment.Value)
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("PIPELINE SUMMARY", []string{
		fmt.Sprintf("Section: %d x %d in.", dims.Width, dims.Depth),
		fmt.Sprintf("Factored load: %.2f kip/ft (%s)", controlling.Value, controlling.Combination),
		fmt.Sprintf("Vmax = %.2f kip, Mmax = %.2f kip-ft", res.Maxima.Shear.Value, res.Maxima.Moment.Value),
	}))
	fmt.Println()

	fmt.Println("EXPLANATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, r := range []step.Result{sizeResult, loadResult, analysisResult} {
		for _, line := range r.Explanations() {
			fmt.Printf("  • %s\n", line)
		}
	}
	fmt.Println()
}
