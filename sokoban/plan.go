package sokoban

import (
	"github.com/skapix/sokoban/board"
	"github.com/skapix/sokoban/grid"
	"github.com/skapix/sokoban/solve"
)

// reconstructPlan turns the chain of pushStates the push-level search
// returned (root first, goal last) into the unit-granular move list spec
// §4.10 describes: for each push, walk the unit to the cell behind the box
// being pushed, then append the push itself. unit is the real starting
// position (from Map.Split), not the canonical unit cell stored on a
// pushState, which only identifies the reachable region up to symmetry and
// is not where the unit actually stands.
func reconstructPlan(static *board.Map, unit board.Pos, chain []solve.State) []grid.Move {
	var moves []grid.Move
	for i := 1; i < len(chain); i++ {
		prev := chain[i-1].(pushState)
		cur := chain[i].(pushState)

		box := prev.mapState.Boxes[cur.record.boxIndex]
		pushFrom := box.Sub(cur.record.move)

		moves = append(moves, findPath(static, prev.mapState.Boxes, unit, pushFrom)...)
		moves = append(moves, cur.record.move)
		unit = box
	}
	return moves
}
