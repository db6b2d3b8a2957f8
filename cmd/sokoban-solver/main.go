// Command sokoban-solver is the hosting tool spec §6 describes in summary:
// it loads a level file, runs the core solver, and prints the resulting
// plan. It owns the worker/timeout responsibilities the core itself stays
// free of.
package main

import "github.com/skapix/sokoban/cmd/sokoban-solver/cmd"

func main() {
	cmd.Execute()
}
