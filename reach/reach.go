// Package reach computes which cells the unit can walk to without moving a
// box, the canonical representative of that reachable component, and the
// hashable, order-sensitive MapState used to deduplicate search nodes.
package reach

import (
	"github.com/skapix/sokoban/board"
	"github.com/skapix/sokoban/grid"
)

// Map is a flood-fill over static (walls only) treating every position in
// boxes as an additional blocker, seeded from unit. It is the "drawUnitMap"
// of spec §4.5.
func Map(static *board.Map, boxes []board.Pos, unit board.Pos) grid.BoolMat {
	blocked := grid.NewBoolMat(static.Rows(), static.Cols())
	for _, b := range boxes {
		grid.SetTrue(&blocked, b)
	}

	reachable := grid.NewBoolMat(static.Rows(), static.Cols())
	grid.SetTrue(&reachable, unit)
	queue := []board.Pos{unit}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, mv := range grid.Moves {
			n := p.Add(mv)
			if reachable.Contains(n) && !reachable.MustAt(n) && !static.At(n).IsWall() && !blocked.MustAt(n) {
				grid.SetTrue(&reachable, n)
				queue = append(queue, n)
			}
		}
	}
	return reachable
}

// Canonical returns the row-major-smallest position marked true in
// reachable. It panics if reachable has no true cell, which would mean the
// unit isn't even reachable from itself — a programmer error upstream.
func Canonical(reachable grid.BoolMat) board.Pos {
	for _, p := range reachable.Positions() {
		if reachable.MustAt(p) {
			return p
		}
	}
	panic("reach: reachability map has no reachable cell")
}

// CanonicalUnit computes the reachability map from unit and returns its
// canonical representative in one step.
func CanonicalUnit(static *board.Map, boxes []board.Pos, unit board.Pos) board.Pos {
	return Canonical(Map(static, boxes, unit))
}
