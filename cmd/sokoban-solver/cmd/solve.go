package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/skapix/sokoban/levelfile"
	"github.com/skapix/sokoban/sokoban"
)

var (
	levelIndex int
	timeout    time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve <file>",
	Short: "Solve one level of a level-file",
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
		if levelIndex < 0 || levelIndex >= len(set.Levels) {
			return fmt.Errorf("sokoban-solver: level index %d out of range (file has %d levels)", levelIndex, len(set.Levels))
		}
		level := set.Levels[levelIndex]

		fmt.Printf("Solving %q:\n", level.Name)
		renderMap(level.Map)

		stop := make(chan struct{})
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt)
		defer signal.Stop(signals)

		var timer <-chan time.Time
		if timeout > 0 {
			t := time.NewTimer(timeout)
			defer t.Stop()
			timer = t.C
		}
		go func() {
			select {
			case <-signals:
			case <-timer:
			}
			close(stop)
		}()

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " solving..."
		_ = s.Color("cyan", "bold")
		s.Start()

		solver := sokoban.NewSolver()
		solver.Stop(stop)
		start := time.Now()
		state := solver.Solve(level.Map)
		elapsed := time.Since(start)

		s.Stop()

		switch state {
		case sokoban.Solved:
			fmt.Printf("Solved in %v (%d pushes, %d unit moves)\n", elapsed, solver.BoxMovements(), len(solver.Result()))
			for _, mv := range solver.Result() {
				fmt.Printf("%v ", mv)
			}
			fmt.Println()
		case sokoban.NotSolved:
			fmt.Printf("Not solved (stopped after %v)\n", elapsed)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().IntVar(&levelIndex, "level", 0, "0-based index of the level to solve")
	solveCmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the search after this duration (0 = no timeout)")
}
