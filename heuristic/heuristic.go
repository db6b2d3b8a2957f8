// Package heuristic provides an admissible lower bound on the remaining
// push count: per-destination shortest push-distance tables, combined
// through the Hungarian minimum-cost assignment of boxes to destinations.
package heuristic

import (
	"fmt"

	"github.com/skapix/sokoban/board"
	"github.com/skapix/sokoban/grid"
	"github.com/skapix/sokoban/hungarian"
	"github.com/skapix/sokoban/reach"
)

// Kind selects which BFS edge condition builds the distance tables. Both
// variants are implemented identically per spec's open question: the
// reference source's "extended" BFS condition is indistinguishable from the
// basic one, so both constructors share bfsEdgeAllowed below until a
// failing test distinguishes them.
type Kind int

const (
	HungarianTaxicab Kind = iota
	HungarianTaxicabPush
)

// Heuristic holds, per destination, a BFS distance grid computed once from
// the static map. Evaluating it on a MapState builds a box x destination
// cost matrix and hands it to hungarian.Solve.
type Heuristic struct {
	kind   Kind
	static *board.Map
	dests  []board.Pos
	// distance[d] is the push-distance grid seeded from dests[d].
	distance []grid.Mat[int]
	inited   bool
}

// New constructs an un-initialised Heuristic of the given kind. Call Init
// before evaluating it; evaluating before Init panics, matching spec's
// "heuristic used before init" programmer error.
func New(kind Kind) *Heuristic {
	return &Heuristic{kind: kind}
}

// Init scans static for every Destination cell and computes, for each one,
// the shortest push-distance from that destination to every other
// reachable cell. Distances are measured ignoring boxes entirely -- this is
// what keeps the resulting heuristic admissible.
func (h *Heuristic) Init(static *board.Map) {
	h.static = static
	h.dests = nil
	for _, p := range static.Positions() {
		if static.At(p).HasDestination() {
			h.dests = append(h.dests, p)
		}
	}
	h.distance = make([]grid.Mat[int], len(h.dests))
	for i, dest := range h.dests {
		h.distance[i] = h.bfsFrom(dest)
	}
	h.inited = true
}

// bfsFrom computes, for one destination, the shortest number of pushes
// needed to move a box from every cell to dest, by BFS over the static
// layout in reverse: the search steps from cur to next = cur+m when a box at
// next could be pushed back onto cur, i.e. next, next+m (where the pushing
// unit stands) and cur are all non-wall. This is the shared edge condition
// for both Kind variants (see the Kind doc comment on the open question
// this resolves).
func (h *Heuristic) bfsFrom(dest board.Pos) grid.Mat[int] {
	dist := grid.NewMatFilled[int](h.static.Rows(), h.static.Cols(), hungarian.Inf)
	dist.MustSet(dest, 0)
	queue := []board.Pos{dest}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist.MustAt(cur)
		for _, mv := range grid.Moves {
			next := cur.Add(mv)
			if !dist.Contains(next) {
				continue
			}
			if dist.MustAt(next) != hungarian.Inf {
				continue
			}
			if !h.bfsEdgeAllowed(cur, next, mv) {
				continue
			}
			dist.MustSet(next, d+1)
			queue = append(queue, next)
		}
	}
	return dist
}

// bfsEdgeAllowed reports whether a box can be pushed from next to cur (the
// search runs backwards from the destination), which requires a unit
// standing on the far side of next (next+mv) able to push it to cur, i.e.
// both next+mv and cur must be free of walls.
func (h *Heuristic) bfsEdgeAllowed(cur, next board.Pos, mv grid.Move) bool {
	behind := next.Add(mv)
	return !h.static.At(next).IsWall() && !h.static.At(behind).IsWall() && !h.static.At(cur).IsWall()
}

// Evaluate returns the admissible lower bound on the number of pushes still
// needed to solve state: the minimum-cost assignment of boxes to
// destinations, using the precomputed per-destination distance grids as
// cost. Evaluate panics if Init has not been called.
func (h *Heuristic) Evaluate(boxes []board.Pos) int {
	if !h.inited {
		panic("heuristic: Evaluate called before Init")
	}
	n := len(boxes)
	if n != len(h.dests) {
		panic(fmt.Sprintf("heuristic: %d boxes but %d destinations", n, len(h.dests)))
	}
	cost := make([][]int, n)
	for i, box := range boxes {
		cost[i] = make([]int, n)
		for j := range h.dests {
			d := h.distance[j].MustAt(box)
			if d >= hungarian.Inf {
				cost[i][j] = hungarian.Inf
			} else {
				cost[i][j] = d
			}
		}
	}
	_, total := hungarian.Solve(cost)
	if total >= hungarian.Inf {
		panic("heuristic: assignment total is not much smaller than Inf; solvability guard failed upstream")
	}
	return total
}

// EvaluateState is a convenience wrapper evaluating a reach.MapState.
func (h *Heuristic) EvaluateState(s reach.MapState) int {
	return h.Evaluate(s.Boxes)
}
