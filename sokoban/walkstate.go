package sokoban

import (
	"github.com/skapix/sokoban/board"
	"github.com/skapix/sokoban/grid"
	"github.com/skapix/sokoban/solve"
)

// walkContext is the per-path-search context: the static layout, the box
// positions that block the unit (the push-level search already confirmed
// no other box moves during this walk), and the single target cell.
type walkContext struct {
	static  *board.Map
	blocked []board.Pos
	target  board.Pos
}

// walkState is a unit-granular search node used only by plan
// reconstruction: the sub-problem of walking the unit from its current
// position to the cell behind the next box to push, without moving any
// box. It mirrors the teacher's own getWalkMoves helper, generalised from a
// multi-target search to a single target.
type walkState struct {
	pos  board.Pos
	cost int
}

func (s walkState) Cost(ctx solve.Context) float64 { return float64(s.cost) }

func (s walkState) Heuristic(ctx solve.Context) float64 { return 0 }

func (s walkState) IsGoal(ctx solve.Context) bool {
	wc := ctx.Custom.(*walkContext)
	return s.pos == wc.target
}

func (s walkState) Expand(ctx solve.Context) []solve.State {
	wc := ctx.Custom.(*walkContext)
	var children []solve.State
	for _, m := range grid.Moves {
		n := s.pos.Add(m)
		if wc.static.At(n).IsWall() {
			continue
		}
		if isBlocked(wc.blocked, n) {
			continue
		}
		children = append(children, walkState{pos: n, cost: s.cost + 1})
	}
	return children
}

func isBlocked(blocked []board.Pos, p board.Pos) bool {
	for _, b := range blocked {
		if b == p {
			return true
		}
	}
	return false
}

// walkCPMap is a solve.CPMap keyed directly by position, used for the
// breadth-first walk search's cheapest-path dedup.
type walkCPMap map[board.Pos]solve.CPNode

func (c walkCPMap) Get(s solve.State) (solve.CPNode, bool) {
	v, ok := c[s.(walkState).pos]
	return v, ok
}

func (c walkCPMap) Put(s solve.State, value solve.CPNode) {
	c[s.(walkState).pos] = value
}

func (c walkCPMap) Clear() {
	for k := range c {
		delete(c, k)
	}
}

// findPath returns the unit moves walking from start to target over static,
// treating blocked as additional impassable cells. It panics if no path
// exists, which would mean the push-level search reached an inconsistent
// state: it already established the unit could reach target.
func findPath(static *board.Map, blocked []board.Pos, start, target board.Pos) []grid.Move {
	if start == target {
		return nil
	}
	wc := &walkContext{static: static, blocked: blocked, target: target}
	cp := make(walkCPMap)
	result := solve.NewSolver(walkState{pos: start}).
		Context(wc).
		Algorithm(solve.BreadthFirst).
		Constraint(solve.CheapestPathConstraint(cp)).
		Solve()
	if !result.Solved() {
		panic("sokoban: plan reconstruction could not re-find a walk the push search already assumed reachable")
	}
	moves := make([]grid.Move, 0, len(result.Solution)-1)
	for i := 1; i < len(result.Solution); i++ {
		prev := result.Solution[i-1].(walkState).pos
		cur := result.Solution[i].(walkState).pos
		moves = append(moves, grid.RestoreMove(prev, cur))
	}
	return moves
}
