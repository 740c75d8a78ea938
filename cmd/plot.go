package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aminghali/structural-engineering-notebooks/internal/config"
	"github.com/aminghali/structural-engineering-notebooks/internal/diagram"
	"github.com/aminghali/structural-engineering-notebooks/internal/rebar"
	"github.com/spf13/cobra"
)

var (
	// Settings
	plotConfig    string
	plotOutputDir string
	plotUnique    bool
	plotDPI       int
	plotASCII     bool

	// Beam overrides
	plotLength      float64
	plotDead        float64
	plotLive        float64
	plotFactored    float64
	plotWidth       float64
	plotHeight      float64
	plotSteelArea   float64
	plotBarDiameter float64
	plotCover       float64
	plotFc          float64
	plotFy          float64
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw calculation sheet figures",
	Long: `Draw the calculation sheet figures of a simply-supported beam.

Values come from the built-in example beam, then the --config YAML
file, then the flags given on the command line.

Subcommands:
  beam     - beam elevation and service load diagram
  forces   - shear force and bending moment diagrams
  steel    - reinforcement layout of the section
  all      - all three figures

Each figure is written as <name>.png and <name>.pdf.

Example config:
  beam:
    length: 8
    dead_load: 20
    live_load: 25
    width: 350
    height: 600
    steel_area_required: 1800
    bar_diameter: 25
  style:
    dpi: 300
    colors:
      blue: "#1f4e79"
  output:
    dir: reports/figures`,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	pf := plotCmd.PersistentFlags()
	pf.StringVar(&plotConfig, "config", "", "YAML settings file")
	pf.StringVarP(&plotOutputDir, "output-dir", "o", "", "Output directory (default \""+config.DefaultOutputDir+"\")")
	pf.BoolVar(&plotUnique, "unique", false, "Write into a new job subdirectory")
	pf.IntVar(&plotDPI, "dpi", 0, "PNG resolution (default 300)")
	pf.BoolVar(&plotASCII, "ascii", false, "Also print terminal previews")

	pf.Float64VarP(&plotLength, "length", "L", 0, "Span (m)")
	pf.Float64VarP(&plotDead, "dead", "d", 0, "Dead load (kN/m)")
	pf.Float64VarP(&plotLive, "live", "l", 0, "Live load (kN/m)")
	pf.Float64Var(&plotFactored, "wu", 0, "Factored load (kN/m), default: governing combination")
	pf.Float64VarP(&plotWidth, "width", "b", 0, "Section width (mm)")
	pf.Float64Var(&plotHeight, "height", 0, "Section height (mm)")
	pf.Float64Var(&plotSteelArea, "as", 0, "Required steel area (mm²), default: singly reinforced design")
	pf.Float64Var(&plotBarDiameter, "bar", 0, "Bar diameter (mm)")
	pf.Float64VarP(&plotCover, "cover", "c", 0, "Clear cover (mm)")
	pf.Float64Var(&plotFc, "fc", 0, "Concrete strength f'c (MPa)")
	pf.Float64Var(&plotFy, "fy", 0, "Steel yield strength fy (MPa)")
}

// plotSettings is what every plot subcommand works from.
type plotSettings struct {
	cfg    *config.Config
	style  diagram.Style
	target diagram.Target
	jobID  string
}

func loadPlotSettings(cmd *cobra.Command) (*plotSettings, error) {
	cfg, err := config.LoadOrDefault(plotConfig)
	if err != nil {
		return nil, err
	}
	applyBeamFlags(cmd, &cfg.Beam)

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.Output.Dir = plotOutputDir
	}
	if flags.Changed("unique") {
		cfg.Output.Unique = plotUnique
	}
	if flags.Changed("dpi") {
		cfg.Style.DPI = plotDPI
	}

	style, err := cfg.Style.Style()
	if err != nil {
		return nil, err
	}

	target, err := diagram.NewTarget(cfg.Output.Dir)
	if err != nil {
		return nil, err
	}

	s := &plotSettings{cfg: cfg, style: style, target: target}
	if cfg.Output.Unique {
		s.target, s.jobID = target.ForJob()
	}
	return s, nil
}

func applyBeamFlags(cmd *cobra.Command, b *config.BeamConfig) {
	flags := cmd.Flags()
	set := func(name string, dst *float64, v float64) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	setPtr := func(name string, dst **float64, v float64) {
		if flags.Changed(name) {
			*dst = &v
		}
	}

	set("length", &b.Length, plotLength)
	set("dead", &b.DeadLoad, plotDead)
	set("live", &b.LiveLoad, plotLive)
	setPtr("wu", &b.FactoredLoad, plotFactored)
	set("width", &b.Width, plotWidth)
	set("height", &b.Height, plotHeight)
	setPtr("as", &b.SteelAreaRequired, plotSteelArea)
	setPtr("bar", &b.BarDiameter, plotBarDiameter)
	setPtr("cover", &b.Cover, plotCover)
	set("fc", &b.Fc, plotFc)
	set("fy", &b.Fy, plotFy)
}

func printHeader(title string, s *plotSettings) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if s.jobID != "" {
		fmt.Printf("  Job: %s\n\n", s.jobID)
	}
}

func printWritten(paths ...string) {
	fmt.Println("FIGURES WRITTEN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	fmt.Println()
}

func printBarSuggestions(asRequired float64) {
	suggestions := rebar.Suggest(asRequired, rebar.CommonDiameters)
	if len(suggestions) == 0 {
		return
	}

	fmt.Println("SUGGESTED BAR COMBINATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bars\tAs Provided\tRatio\n")
	fmt.Fprintf(w, "  ────\t───────────\t─────\n")
	for _, s := range suggestions {
		fmt.Fprintf(w, "  %d - φ%gmm\t%.2f mm²\t%.2f\n", s.Count, s.Diameter, s.AsProvided, s.Ratio)
	}
	w.Flush()
	fmt.Println()
}
