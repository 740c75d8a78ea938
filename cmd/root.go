package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aminghali/structural-engineering-notebooks/internal/diagram"
	"github.com/aminghali/structural-engineering-notebooks/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "calcfig",
	Short: "Calculation sheet figures for simply-supported RC beams",
	Long: `calcfig - figures for reinforced concrete beam calculation sheets

Draws the three standard figures of a simply-supported beam calc sheet
as PNG (300 dpi) and PDF:

  beam_diagram   beam elevation, supports and service load diagram
  bmd_sfd        loaded beam, shear force and bending moment diagrams
  steel_layout   section with the bottom bar arrangement

Factored loads follow the ACI 318-19 strength design combinations.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			diagram.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("calcfig v%s", version.Version), []string{
			"RC Beam Calculation Sheet Figures",
			fmt.Sprintf("%s © %s", version.Author, version.Year),
		}))
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    • load   factored line load from load combinations")
		fmt.Println("    • plot   beam, force and steel layout figures")
		fmt.Println()
		fmt.Println("  Use 'calcfig --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log rendering steps to stderr")
}
