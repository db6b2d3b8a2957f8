package sokoban

import (
	"github.com/skapix/sokoban/board"
	"github.com/skapix/sokoban/heuristic"
	"github.com/skapix/sokoban/solvability"
	"github.com/skapix/sokoban/solve"
)

// searchContext is the per-solve() read-only context threaded through
// solve.Context.Custom: the static layout plus the two precomputed analyses
// every pushState.Expand needs. It never changes after Solve starts, so it
// is safe to share across every node in the search tree.
type searchContext struct {
	static      *board.Map
	heuristic   *heuristic.Heuristic
	solvability *solvability.Map
}

// pushCPMap is a solve.CPMap keyed by reach.MapState.Hash, used as the
// dedup/cheapest-path store for the push-level A* search. Collisions are
// possible in principle (a 64-bit hash of an unbounded state space) but are
// treated as identity, matching the hash-set dedup spec §4.9 describes.
type pushCPMap map[uint64]solve.CPNode

func (c pushCPMap) Get(s solve.State) (solve.CPNode, bool) {
	v, ok := c[s.(pushState).mapState.Hash()]
	return v, ok
}

func (c pushCPMap) Put(s solve.State, value solve.CPNode) {
	c[s.(pushState).mapState.Hash()] = value
}

func (c pushCPMap) Clear() {
	for k := range c {
		delete(c, k)
	}
}
