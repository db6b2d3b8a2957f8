package sokoban

import (
	"sort"

	"github.com/skapix/sokoban/board"
	"github.com/skapix/sokoban/grid"
	"github.com/skapix/sokoban/reach"
	"github.com/skapix/sokoban/solve"
)

// pushRecord names the single push that produced a pushState from its
// parent: box boxIndex (indexing the parent's sorted box list) was pushed
// in direction move.
type pushRecord struct {
	boxIndex int
	move     grid.Move
}

// pushState is a search-tree node: the sorted box list and canonical unit
// of one MapState, plus the push that reached it from its parent (used by
// plan reconstruction, not by the search itself). nMoves is the push count
// from the root, which doubles as Cost since every push costs exactly 1.
type pushState struct {
	mapState reach.MapState
	nMoves   int
	record   pushRecord
	hasRecord bool
}

func newRootPushState(static *board.Map, boxes []board.Pos, unit board.Pos) pushState {
	return pushState{mapState: reach.NewMapState(static, boxes, unit)}
}

func (s pushState) Cost(ctx solve.Context) float64 {
	return float64(s.nMoves)
}

func (s pushState) Heuristic(ctx solve.Context) float64 {
	sc := ctx.Custom.(*searchContext)
	return float64(sc.heuristic.Evaluate(s.mapState.Boxes))
}

func (s pushState) IsGoal(ctx solve.Context) bool {
	sc := ctx.Custom.(*searchContext)
	for _, b := range s.mapState.Boxes {
		if !sc.static.At(b).HasDestination() {
			return false
		}
	}
	return true
}

// Expand generates every push the unit can execute from s: for each box and
// each of the four directions, the unit must be able to reach the cell
// behind the box, and the cell ahead of it must be free and pass the
// solvability guard. The successor's unit is re-canonicalised from the
// pushed box's vacated cell.
func (s pushState) Expand(ctx solve.Context) []solve.State {
	sc := ctx.Custom.(*searchContext)
	reachable := reach.Map(sc.static, s.mapState.Boxes, s.mapState.Unit)

	var children []solve.State
	for i, box := range s.mapState.Boxes {
		for _, m := range grid.Moves {
			pushFrom := box.Sub(m)
			if !reachable.Contains(pushFrom) || !reachable.MustAt(pushFrom) {
				continue
			}
			newPos := box.Add(m)
			if !safeIsFree(sc.static, s.mapState.Boxes, newPos) {
				continue
			}
			newBoxes := replaceSorted(s.mapState.Boxes, i, newPos)
			if !sc.solvability.IsValid(newPos, newBoxes) {
				continue
			}
			newUnit := reach.CanonicalUnit(sc.static, newBoxes, box)
			children = append(children, pushState{
				mapState:  reach.MapState{Boxes: newBoxes, Unit: newUnit},
				nMoves:    s.nMoves + 1,
				record:    pushRecord{boxIndex: i, move: m},
				hasRecord: true,
			})
		}
	}
	return children
}

// safeIsFree reports whether p can receive a pushed box: not a wall and not
// already occupied by another box.
func safeIsFree(static *board.Map, boxes []board.Pos, p board.Pos) bool {
	if static.At(p).IsWall() {
		return false
	}
	for _, b := range boxes {
		if b == p {
			return false
		}
	}
	return true
}

// replaceSorted returns boxes with the element at idx replaced by p,
// re-sorted ascending. The input is never mutated.
func replaceSorted(boxes []board.Pos, idx int, p board.Pos) []board.Pos {
	out := make([]board.Pos, len(boxes))
	copy(out, boxes)
	out[idx] = p
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
