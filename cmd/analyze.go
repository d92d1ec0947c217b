package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jinxindev/simplybeam/internal/analysis"
	"github.com/jinxindev/simplybeam/internal/diagram"
	"github.com/jinxindev/simplybeam/internal/step"
	"github.com/spf13/cobra"
)

var (
	// Analysis inputs
	analyzeSpan   float64
	analyzeLoad   float64
	analyzePoints int

	// Diagram options
	analyzeShowDiagram bool
	analyzeExportFile  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a simply supported beam under uniform load",
	Long: `Calculate support reactions, maximum shear and moment, and the
shear/moment diagram ordinates for a simply supported beam carrying a
uniform factored load.

Standard beam equations:
  R  = wu*L/2
  Vmax = wu*L/2 (at supports)
  Mmax = wu*L²/8 (at midspan)

Examples:
  # Analyze a 20 ft span carrying 2.5 kip/ft
  simplybeam analyze --span 20 --load 2.5

  # Show ASCII diagrams and export images
  simplybeam analyze --span 20 --load 2.5 --diagram --output beam.png`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Float64VarP(&analyzeSpan, "span", "s", 0, "Span length (ft) [required]")
	analyzeCmd.Flags().Float64VarP(&analyzeLoad, "load", "w", 0, "Factored uniform load wu (kip/ft) [required]")
	analyzeCmd.Flags().IntVarP(&analyzePoints, "points", "n", analysis.DefaultNumPoints, "Number of diagram sample points (>= 2)")

	analyzeCmd.MarkFlagRequired("span")
	analyzeCmd.MarkFlagRequired("load")

	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII shear/moment diagrams")
	analyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export diagrams to file (png, svg, pdf)")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	analyzer := analysis.New()

	params := step.Params{
		"span_length":   analyzeSpan,
		"factored_load": analyzeLoad,
	}
	if cmd.Flags().Changed("points") {
		params["num_points"] = analyzePoints
	}

	result, err := analyzer.Design(params)
	if err != nil {
		reportError(err)
		return
	}
	res := result.(*analysis.DesignResult)

	printAnalysis(res)

	diagramData := diagram.BeamDiagramData{
		X:            res.Diagram.X,
		Shear:        res.Diagram.Shear,
		Moment:       res.Diagram.Moment,
		SpanLength:   analyzeSpan,
		FactoredLoad: analyzeLoad,
	}

	if analyzeShowDiagram {
		fmt.Println(diagram.DrawLoadingSketch(diagramData))
		fmt.Println(diagram.DrawASCIIShearDiagram(diagramData))
		fmt.Println(diagram.DrawASCIIMomentDiagram(diagramData))
	}

	if analyzeExportFile != "" {
		if err := diagram.ExportBeamDiagrams(diagramData, analyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagrams: %v\n", err)
		} else {
			fmt.Printf("Diagrams exported to: %s\n", analyzeExportFile)
		}
	}
}

func printAnalysis(res *analysis.DesignResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STRUCTURAL ANALYSIS - SIMPLY SUPPORTED BEAM")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span Length (L):\t%v ft\n", res.Inputs["span_length"])
	fmt.Fprintf(w, "  Factored Load (wu):\t%v kip/ft\n", res.Inputs["factored_load"])
	fmt.Fprintf(w, "  Diagram Points:\t%v\n", res.Inputs["num_points"])
	w.Flush()
	fmt.Println()

	fmt.Println("REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ra = Rb:\t%.2f kip\n", res.Reactions.Ra)
	fmt.Fprintf(w, "  Formula:\t%s\n", res.Reactions.Formula)
	w.Flush()
	fmt.Println()

	fmt.Println("MAXIMUM VALUES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max Shear (Vmax):\t%.2f kip\t%s\n", res.Maxima.Shear.Value, res.Maxima.Shear.Location)
	fmt.Fprintf(w, "  Max Moment (Mmax):\t%.2f kip-ft\t%s\n", res.Maxima.Moment.Value, res.Maxima.Moment.Location)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("ANALYSIS RESULT", []string{
		fmt.Sprintf("R = %.2f kip", res.Reactions.Ra),
		fmt.Sprintf("Vmax = %.2f kip", res.Maxima.Shear.Value),
		fmt.Sprintf("Mmax = %.2f kip-ft", res.Maxima.Moment.Value),
	}))
	fmt.Println()
}
