package cmd

import (
	"fmt"

	"github.com/aminghali/structural-engineering-notebooks/internal/diagram"
	"github.com/aminghali/structural-engineering-notebooks/internal/rebar"
	"github.com/spf13/cobra"
)

var plotSteelCmd = &cobra.Command{
	Use:   "steel",
	Short: "Draw the reinforcement layout of the section",
	Long: `Arrange bottom bars for the required steel area and draw the section.

The bar count is ceil(As / bar area). Bars sit in one row at the cover,
evenly spaced between the cover lines. Without --as the required area is
estimated from a singly reinforced design for the midspan moment, with
d = h - 50 mm.

Examples:
  calcfig plot steel --width 350 --height 600 --as 1800 --bar 25
  calcfig plot steel --bar 20 --cover 50 --ascii`,
	RunE: runPlotSteel,
}

func init() {
	plotCmd.AddCommand(plotSteelCmd)
}

func runPlotSteel(cmd *cobra.Command, args []string) error {
	s, err := loadPlotSettings(cmd)
	if err != nil {
		return err
	}
	p, err := s.cfg.Beam.Parameters()
	if err != nil {
		return err
	}

	path, _, _, err := diagram.RenderSteel(s.target, s.style, p.Width, p.Height, p.SteelAreaRequired, p.BarDiameter, p.Cover)
	if err != nil {
		return err
	}
	layout, err := rebar.NewLayout(p.Width, p.Height, p.SteelAreaRequired, p.BarDiameter, p.Cover)
	if err != nil {
		return err
	}

	printHeader("REINFORCEMENT STEEL LAYOUT", s)
	fmt.Print(diagram.DrawSummaryBox("STEEL LAYOUT", []string{
		fmt.Sprintf("Required As:    %.0f mm²", layout.AsRequired),
		fmt.Sprintf("Bars:           %d - φ%gmm (%.1f mm² each)", layout.Count, layout.BarDiameter, layout.BarArea),
		fmt.Sprintf("Provided As:    %.0f mm²", layout.AsProvided),
		fmt.Sprintf("Spacing (c/c):  %.1f mm", layout.Spacing),
	}))
	fmt.Println()

	if plotASCII {
		fmt.Println(diagram.DrawSectionSketch(layout))
	}

	printBarSuggestions(p.SteelAreaRequired)
	printWritten(path)
	return nil
}
