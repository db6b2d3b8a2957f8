package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skapix/sokoban/levelfile"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <file>",
	Short: "List the levels found in a level-file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("sokoban-solver: %w", err)
		}
		defer f.Close()

		set, err := levelfile.Read(f)
		if err != nil {
			return fmt.Errorf("sokoban-solver: %w", err)
		}
		for i, level := range set.Levels {
			fmt.Printf("%d: %s (%dx%d)\n", i, level.Name, level.Map.Rows(), level.Map.Cols())
		}
		return nil
	},
}
