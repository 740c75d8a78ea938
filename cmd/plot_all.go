package cmd

import (
	"fmt"

	"github.com/aminghali/structural-engineering-notebooks/internal/beam"
	"github.com/aminghali/structural-engineering-notebooks/internal/diagram"
	"github.com/aminghali/structural-engineering-notebooks/internal/rebar"
	"github.com/spf13/cobra"
)

var plotAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Draw all calculation sheet figures",
	Long: `Draw beam_diagram, bmd_sfd and steel_layout for one beam. Every
input is checked before the first figure is drawn.

Examples:
  calcfig plot all
  calcfig plot all --config beam.yaml --unique`,
	RunE: runPlotAll,
}

func init() {
	plotCmd.AddCommand(plotAllCmd)
}

func runPlotAll(cmd *cobra.Command, args []string) error {
	s, err := loadPlotSettings(cmd)
	if err != nil {
		return err
	}
	p, err := s.cfg.Beam.Parameters()
	if err != nil {
		return err
	}

	res, err := diagram.RenderAll(s.target, s.style, p)
	if err != nil {
		return err
	}

	printHeader("CALCULATION SHEET FIGURES", s)
	fmt.Print(diagram.DrawSummaryBox("RESULTS", []string{
		fmt.Sprintf("Span L = %.2f m, w_u = %.2f kN/m", p.Length, p.FactoredLoad),
		fmt.Sprintf("M_max = %.2f kN·m", res.MMax),
		fmt.Sprintf("V_max = %.2f kN", res.VMax),
		fmt.Sprintf("As,req = %.0f mm²", p.SteelAreaRequired),
		fmt.Sprintf("Bars = %d - φ%gmm, As,prov = %.0f mm²", res.NBars, p.BarDiameter, res.AsProvided),
	}))
	fmt.Println()

	if plotASCII {
		fmt.Println(diagram.ForcePreview(beam.SimpleSpan{Length: p.Length, Load: p.FactoredLoad}, 61))
		if layout, err := rebar.NewLayout(p.Width, p.Height, p.SteelAreaRequired, p.BarDiameter, p.Cover); err == nil {
			fmt.Println(diagram.DrawSectionSketch(layout))
		}
	}

	printBarSuggestions(p.SteelAreaRequired)
	printWritten(res.Paths[diagram.KeyBeamDiagram], res.Paths[diagram.KeyForces], res.Paths[diagram.KeySteelLayout])
	return nil
}
