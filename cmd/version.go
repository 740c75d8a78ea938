package cmd

import (
	"fmt"

	"github.com/aminghali/structural-engineering-notebooks/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of calcfig",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("calcfig v%s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.GitCommit)
		fmt.Printf("  built:  %s\n", version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
