package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jinxindev/simplybeam/internal/loads"
	"github.com/jinxindev/simplybeam/internal/step"
	"github.com/spf13/cobra"
)

var (
	// Unfactored loads (kip/ft)
	loadDead    float64
	loadLive    float64
	loadRoof    float64
	loadSnow    float64
	loadRain    float64
	loadWind    float64
	loadSeismic float64

	// Options
	loadShowAll bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate factored load using ACI load combinations",
	Long: `Calculate the factored distributed load (wu) from the ACI 318-19
Table 5.3.1 load combinations.

A combination is evaluated only when the loads it governs were actually
supplied; omitting a load is different from passing zero.

Load Types:
  D  - Dead load (required)
  L  - Live load
  Lr - Roof live load
  S  - Snow load
  R  - Rain load
  W  - Wind load
  E  - Seismic load

Examples:
  # Gravity loads only
  simplybeam loads --dead 2.5 --live 1.8

  # With wind
  simplybeam loads --dead 2.5 --live 1.8 --wind 4.2

  # Show every eligible combination
  simplybeam loads --dead 2.5 --live 1.8 --wind 4.2 --all`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Dead load D (kip/ft) [required]")
	loadsCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Live load L (kip/ft)")
	loadsCmd.Flags().Float64VarP(&loadRoof, "roof", "r", 0, "Roof live load Lr (kip/ft)")
	loadsCmd.Flags().Float64Var(&loadSnow, "snow", 0, "Snow load S (kip/ft)")
	loadsCmd.Flags().Float64VarP(&loadRain, "rain", "R", 0, "Rain load R (kip/ft)")
	loadsCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Wind load W (kip/ft)")
	loadsCmd.Flags().Float64VarP(&loadSeismic, "seismic", "e", 0, "Seismic load E (kip/ft)")

	loadsCmd.Flags().BoolVarP(&loadShowAll, "all", "a", false, "Show all eligible load combination results")

	loadsCmd.MarkFlagRequired("dead")
}

// loadParams builds the step parameters from the flags that were set.
// Flag presence, not value, decides whether an optional load participates.
func loadParams(cmd *cobra.Command) step.Params {
	params := step.Params{"dead_load": loadDead}
	optional := map[string]*float64{
		"live":    &loadLive,
		"roof":    &loadRoof,
		"snow":    &loadSnow,
		"rain":    &loadRain,
		"wind":    &loadWind,
		"seismic": &loadSeismic,
	}
	names := map[string]string{
		"live":    "live_load",
		"roof":    "roof_live_load",
		"snow":    "snow_load",
		"rain":    "rain_load",
		"wind":    "wind_load",
		"seismic": "seismic_load",
	}
	for flag, value := range optional {
		if cmd.Flags().Changed(flag) {
			params[names[flag]] = *value
		}
	}
	return params
}

func runLoads(cmd *cobra.Command, args []string) {
	analyzer := loads.New()

	result, err := analyzer.Design(loadParams(cmd))
	if err != nil {
		reportError(err)
		return
	}
	res := result.(*loads.DesignResult)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ACI 318-19 FACTORED LOAD CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED LOADS (kip/ft):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printLoad := func(label, key string) {
		if v, ok := res.Inputs[key]; ok {
			fmt.Fprintf(w, "  %s:\t%.2f\n", label, v)
		}
	}
	printLoad("Dead Load (D)", "dead_load")
	printLoad("Live Load (L)", "live_load")
	printLoad("Roof Live Load (Lr)", "roof_live_load")
	printLoad("Snow Load (S)", "snow_load")
	printLoad("Rain Load (R)", "rain_load")
	printLoad("Wind Load (W)", "wind_load")
	printLoad("Seismic Load (E)", "seismic_load")
	w.Flush()
	fmt.Println()

	if loadShowAll {
		fmt.Println("LOAD COMBINATIONS (ACI 318-19 Table 5.3.1):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\twu (kip/ft)\n")
		fmt.Fprintf(w, "  ─\t───────────\t───────────\n")
		for _, combo := range res.Combinations {
			marker := ""
			if res.Controlling != nil && combo.Key == res.Controlling.Combination {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.Key, combo.Formula, combo.Value, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if res.Controlling != nil {
		combo, _ := res.Combination(res.Controlling.Combination)
		fmt.Printf("  Controlling Combination: %s (%s)\n", combo.Key, combo.Name)
		fmt.Printf("  Calculation: %s\n", combo.Calculation)
		fmt.Println()
		fmt.Printf("  ╔═══════════════════════════════════════╗\n")
		fmt.Printf("  ║  FACTORED LOAD (wu) = %.2f kip/ft  \n", res.Controlling.Value)
		fmt.Printf("  ╚═══════════════════════════════════════╝\n")
	}
	fmt.Println()
}
