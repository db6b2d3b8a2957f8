package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sokoban-solver",
	Short: "Push-optimal Sokoban solver",
	Long: `sokoban-solver loads a level-file (spec §6 format), runs the
push-level A* core solver against one of its levels, and prints the
resulting unit-granular plan.`,
}

// Execute adds all child commands to the root command and runs it. It is
// called by main.main() once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(levelsCmd)
}
