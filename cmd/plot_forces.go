package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aminghali/structural-engineering-notebooks/internal/beam"
	"github.com/aminghali/structural-engineering-notebooks/internal/diagram"
	"github.com/spf13/cobra"
)

var plotForcesCmd = &cobra.Command{
	Use:   "forces",
	Short: "Draw the shear force and bending moment diagrams",
	Long: `Draw the loaded beam, the shear force diagram and the bending moment
diagram of a simply-supported span under the factored uniform load.

Without --wu the factored load is the governing gravity combination of
the dead and live loads (1.4D or 1.2D + 1.6L).

Bending moment is drawn positive downward.

Examples:
  calcfig plot forces --length 8 --wu 64
  calcfig plot forces --length 8 --dead 20 --live 25 --ascii`,
	RunE: runPlotForces,
}

func init() {
	plotCmd.AddCommand(plotForcesCmd)
}

func runPlotForces(cmd *cobra.Command, args []string) error {
	s, err := loadPlotSettings(cmd)
	if err != nil {
		return err
	}
	b := s.cfg.Beam
	wu, combo := b.Governing()

	path, mMax, vMax, err := diagram.RenderForces(s.target, s.style, b.Length, wu)
	if err != nil {
		return err
	}

	printHeader("SHEAR FORCE AND BENDING MOMENT DIAGRAMS", s)

	fmt.Println("LOADING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", b.Length)
	if combo.ID != "" {
		fmt.Fprintf(w, "  Governing Combination:\t%s (%s)\n", combo.ID, combo.Description)
	}
	fmt.Fprintf(w, "  Factored Load (w_u):\t%.2f kN/m\n", wu)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("INTERNAL FORCES", []string{
		fmt.Sprintf("M_max = wL²/8 = %.2f kN·m (midspan)", mMax),
		fmt.Sprintf("V_max = wL/2  = %.2f kN (supports)", vMax),
	}))
	fmt.Println()

	if plotASCII {
		fmt.Println(diagram.ForcePreview(beam.SimpleSpan{Length: b.Length, Load: wu}, 61))
	}

	printWritten(path)
	return nil
}
