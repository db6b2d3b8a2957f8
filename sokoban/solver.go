// Package sokoban assembles the grid, board, reach, hungarian, heuristic
// and solvability packages into the push-level A* solver: given a validated
// board.Map it searches for a push-optimal plan and, on success, expands it
// into unit-granular moves.
package sokoban

import (
	"math"

	"github.com/skapix/sokoban/board"
	"github.com/skapix/sokoban/grid"
	"github.com/skapix/sokoban/heuristic"
	"github.com/skapix/sokoban/solvability"
	"github.com/skapix/sokoban/solve"
)

// SolveState mirrors spec §6's solved() result: NotSolved and Solved are the
// only states ever observed after Solve returns; Solving only exists while
// a call is in flight and is never visible to a caller of this package,
// since Solve runs synchronously to completion or cancellation.
type SolveState int

const (
	NotSolved SolveState = iota
	Solving
	Solved
)

func (s SolveState) String() string {
	switch s {
	case NotSolved:
		return "NotSolved"
	case Solving:
		return "Solving"
	case Solved:
		return "Solved"
	}
	return "<unknown>"
}

// Solver is the external interface spec §6 names: set_heuristic, solve,
// result, box_movements, reset.
type Solver struct {
	kind heuristic.Kind
	stop <-chan struct{}

	state     SolveState
	plan      []grid.Move
	pushCount int
}

// NewSolver constructs a Solver using the default HungarianTaxicab
// heuristic.
func NewSolver() *Solver {
	return &Solver{}
}

// SetHeuristic installs the heuristic kind used by the next Solve call.
func (s *Solver) SetHeuristic(kind heuristic.Kind) {
	s.kind = kind
}

// Stop wires a cooperative cancellation channel into the next Solve call;
// see spec §5's concurrency model. Closing stop makes Solve return
// NotSolved at the next node the search pops, without completing the
// search.
func (s *Solver) Stop(stop <-chan struct{}) {
	s.stop = stop
}

// Reset clears any prior result. State()/Result()/BoxMovements() reflect
// NotSolved and an empty plan until the next Solve call completes.
func (s *Solver) Reset() {
	s.state = NotSolved
	s.plan = nil
	s.pushCount = 0
}

// State returns the outcome of the most recent Solve call.
func (s *Solver) State() SolveState {
	return s.state
}

// Result returns the unit-granular plan of the most recent successful
// Solve, or nil if the last Solve did not succeed.
func (s *Solver) Result() []grid.Move {
	return s.plan
}

// BoxMovements returns the push count of the most recent successful plan.
func (s *Solver) BoxMovements() int {
	return s.pushCount
}

// Solve runs the push-level A* search to completion (or until the
// cancellation channel set via Stop closes) and, on success, reconstructs
// the unit-granular plan. It implements spec §4.9's algorithm.
func (s *Solver) Solve(m *board.Map) SolveState {
	s.Reset()

	static, boxes, unit := m.Split()

	h := heuristic.New(s.kind)
	h.Init(static)
	solvMap := solvability.Build(static, len(boxes))

	for _, b := range boxes {
		if !solvMap.IsValid(b, boxes) {
			return s.state
		}
	}

	root := newRootPushState(static, boxes, unit)
	sc := &searchContext{static: static, heuristic: h, solvability: solvMap}
	cp := make(pushCPMap)

	result := solve.NewSolver(root).
		Algorithm(solve.Astar).
		Context(sc).
		Constraint(solve.CheapestPathConstraint(cp)).
		Limit(math.Inf(1)).
		Stop(s.stop).
		Solve()

	if !result.Solved() {
		return s.state
	}

	s.plan = reconstructPlan(static, unit, result.Solution)
	s.pushCount = result.GoalState().(pushState).nMoves
	s.state = Solved
	return s.state
}
