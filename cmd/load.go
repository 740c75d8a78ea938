package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aminghali/structural-engineering-notebooks/internal/aci"
	"github.com/aminghali/structural-engineering-notebooks/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	// Unfactored line loads (kN/m)
	loadDead       float64
	loadLive       float64
	loadRoof       float64
	loadSnow       float64
	loadRain       float64
	loadWind       float64
	loadEarthquake float64

	// Options
	showAll     bool
	gravityOnly bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Calculate the factored line load using ACI 318-19 load combinations",
	Long: `Calculate the factored uniform load (wu) from unfactored line loads
using the ACI 318-19 Table 5.3.1 strength design combinations.

The governing value is the factored load used by 'calcfig plot forces'
when no --wu is given.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  S  - Snow load
  R  - Rain load
  W  - Wind load
  E  - Earthquake load

Examples:
  # Floor beam (dead + live)
  calcfig load --dead 20 --live 25

  # With wind, showing every combination
  calcfig load --dead 20 --live 25 --wind 8 --all`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Dead load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Live load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadRoof, "roof", "r", 0, "Roof live load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadSnow, "snow", "s", 0, "Snow load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadRain, "rain", "R", 0, "Rain load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Wind load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadEarthquake, "earthquake", "e", 0, "Earthquake load (kN/m)")

	loadCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	loadCmd.Flags().BoolVarP(&gravityOnly, "gravity", "g", false, "Use gravity combinations only (1.4D and 1.2D+1.6L)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	loads := aci.LineLoads{
		Dead:       loadDead,
		Live:       loadLive,
		Roof:       loadRoof,
		Snow:       loadSnow,
		Rain:       loadRain,
		Wind:       loadWind,
		Earthquake: loadEarthquake,
	}
	if loads.IsZero() {
		return fmt.Errorf("provide at least one unfactored load; see 'calcfig load --help'")
	}
	if err := loads.Validate(); err != nil {
		return err
	}

	combinations := aci.LoadCombinations
	if gravityOnly {
		combinations = aci.GravityCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ACI 318-19 FACTORED LINE LOAD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED LOADS (kN/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range []struct {
		label string
		value float64
	}{
		{"Dead Load (D)", loads.Dead},
		{"Live Load (L)", loads.Live},
		{"Roof Live Load (Lr)", loads.Roof},
		{"Snow Load (S)", loads.Snow},
		{"Rain Load (R)", loads.Rain},
		{"Wind Load (W)", loads.Wind},
		{"Earthquake Load (E)", loads.Earthquake},
	} {
		if row.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", row.label, row.value)
		}
	}
	w.Flush()
	fmt.Println()

	wu, governing := aci.GoverningLoad(loads, combinations)

	if showAll {
		fmt.Println("LOAD COMBINATIONS (ACI 318-19 Table 5.3.1):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\twu (kN/m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")
		for _, combo := range combinations {
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factored(loads), marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("FACTORED LOAD", []string{fmt.Sprintf("wu = %.2f kN/m", wu)}))
	fmt.Println()
	return nil
}
