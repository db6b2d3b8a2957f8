// Package solvability precomputes, per non-wall cell, a list of predicates
// over a MapState that return false when a box at that cell provably
// cannot lead to a solution ("is dead"). The A* search consults these
// predicates on every successor before enqueuing it, pruning the branch
// without ever expanding it.
package solvability

import (
	"sort"

	"github.com/skapix/sokoban/board"
	"github.com/skapix/sokoban/grid"
	"github.com/skapix/sokoban/reach"
)

// Predicate is a typed variant evaluated by Map.IsValid's small interpreter,
// rather than an opaque closure, so the cover can be introspected and
// compared in tests.
type Predicate interface {
	// ok reports whether state (restricted to a box just placed at the
	// owning cell) is not provably dead.
	ok(boxes []board.Pos) bool
}

// CornerDead is a constant-false predicate: a box at its cell is always
// dead, because the cell is pinned into a corner with no destination.
type CornerDead struct{}

func (CornerDead) ok([]board.Pos) bool { return false }

// LineCap forbids a corridor of cells (a maximal wall-bounded run, either
// horizontal or vertical) from holding more boxes than it has
// destinations.
type LineCap struct {
	Cells     []board.Pos
	MaxBoxes int
}

func (p LineCap) ok(boxes []board.Pos) bool {
	count := 0
	for _, c := range p.Cells {
		if hasBox(boxes, c) {
			count++
		}
	}
	return count <= p.MaxBoxes
}

// ForbidPair forbids two specific cells from both holding a box at once.
type ForbidPair struct {
	A, B board.Pos
}

func (p ForbidPair) ok(boxes []board.Pos) bool {
	return !(hasBox(boxes, p.A) && hasBox(boxes, p.B))
}

// ForbidThreeOfFour forbids three or more of four specific cells from
// holding a box simultaneously.
type ForbidThreeOfFour struct {
	Cells [4]board.Pos
}

func (p ForbidThreeOfFour) ok(boxes []board.Pos) bool {
	count := 0
	for _, c := range p.Cells {
		if hasBox(boxes, c) {
			count++
		}
	}
	return count < 3
}

func hasBox(boxes []board.Pos, p board.Pos) bool {
	idx := sort.Search(len(boxes), func(i int) bool { return !boxes[i].Less(p) })
	return idx < len(boxes) && boxes[idx] == p
}

// Cell is the ordered list of predicates attached to one map cell.
type Cell []Predicate

// Map is a grid of Cells, one per board position. IsValid(p, state) is the
// conjunction of every predicate attached to p.
type Map struct {
	cells grid.Mat[Cell]
}

// IsValid reports whether every predicate attached to p accepts boxes. It
// is called with the position of a box just placed (or already present)
// and the full current box list.
func (m *Map) IsValid(p board.Pos, boxes []board.Pos) bool {
	cell, err := m.cells.At(p)
	if err != nil {
		return true
	}
	for _, pred := range cell {
		if !pred.ok(boxes) {
			return false
		}
	}
	return true
}

// IsValidState is a convenience wrapper over reach.MapState.
func (m *Map) IsValidState(p board.Pos, s reach.MapState) bool {
	return m.IsValid(p, s.Boxes)
}

// Build precomputes the solvability Map for static, given the total number
// of boxes in the level (families 3-5 are only worth emitting once the
// level has enough boxes for the pattern to ever matter).
func Build(static *board.Map, nBoxes int) *Map {
	b := &builder{
		static: static,
		cells:  grid.NewMat[Cell](static.Rows(), static.Cols()),
	}
	b.addCornerDead()
	b.addLineCaps()
	if nBoxes >= 2 {
		b.addFreezePairs()
	}
	if nBoxes >= 3 {
		b.addLShapes()
	}
	if nBoxes >= 4 {
		b.addSquares()
	}
	return &Map{cells: b.cells}
}

type builder struct {
	static *board.Map
	cells  grid.Mat[Cell]
}

func (b *builder) attach(p board.Pos, pred Predicate) {
	cell := b.cells.MustAt(p)
	cell = append(cell, pred)
	b.cells.MustSet(p, cell)
}

func (b *builder) free(p board.Pos) bool {
	return !b.static.At(p).IsWall()
}

func (b *builder) wall(p board.Pos) bool {
	return b.static.At(p).IsWall()
}

func (b *builder) isDest(p board.Pos) bool {
	return b.static.At(p).HasDestination()
}

// addCornerDead marks every non-destination cell bordered by two
// orthogonal walls at 90 degrees as permanently dead.
func (b *builder) addCornerDead() {
	corners := [4][2]grid.Move{
		{grid.Up, grid.Left},
		{grid.Up, grid.Right},
		{grid.Down, grid.Left},
		{grid.Down, grid.Right},
	}
	for _, p := range b.static.Positions() {
		if !b.free(p) || b.isDest(p) {
			continue
		}
		for _, pair := range corners {
			if b.wall(p.Add(pair[0])) && b.wall(p.Add(pair[1])) {
				b.attach(p, CornerDead{})
				break
			}
		}
	}
}

// addLineCaps finds, for each axis independently, every maximal run of free
// cells bounded by walls at both ends that also has a contiguous wall
// running along one whole side, and caps the boxes it may hold at its
// destination count.
func (b *builder) addLineCaps() {
	seen := map[board.Pos]bool{}
	for _, p := range b.static.Positions() {
		if b.free(p) && !seen[p] {
			b.addLineCapRun(p, grid.Right, grid.Up, grid.Down, seen)
		}
	}
	seen = map[board.Pos]bool{}
	for _, p := range b.static.Positions() {
		if b.free(p) && !seen[p] {
			b.addLineCapRun(p, grid.Down, grid.Left, grid.Right, seen)
		}
	}
}

// addLineCapRun walks the maximal run of free cells through p along axis,
// using side1/side2 to check whether one whole side of the run is wall.
func (b *builder) addLineCapRun(p board.Pos, axis, side1, side2 grid.Move, seen map[board.Pos]bool) {
	start := p
	for b.free(start.Sub(axis)) {
		start = start.Sub(axis)
	}
	var cells []board.Pos
	for c := start; b.free(c); c = c.Add(axis) {
		cells = append(cells, c)
		seen[c] = true
	}
	if len(cells) < 2 {
		return
	}
	side1Wall, side2Wall := true, true
	for _, c := range cells {
		if !b.wall(c.Add(side1)) {
			side1Wall = false
		}
		if !b.wall(c.Add(side2)) {
			side2Wall = false
		}
	}
	if !side1Wall && !side2Wall {
		return
	}
	dests := 0
	for _, c := range cells {
		if b.isDest(c) {
			dests++
		}
	}
	pred := LineCap{Cells: cells, MaxBoxes: dests}
	for _, c := range cells {
		b.attach(c, pred)
	}
}

// addFreezePairs emits a ForbidPair for every orthogonally adjacent cell
// pair that is not individually corner-dead, not both destinations, and
// bordered on the same side by a wall running along both cells.
func (b *builder) addFreezePairs() {
	cornerDead := func(c board.Pos) bool {
		for _, pred := range b.cells.MustAt(c) {
			if _, ok := pred.(CornerDead); ok {
				return true
			}
		}
		return false
	}
	for _, p := range b.static.Positions() {
		if !b.free(p) || cornerDead(p) {
			continue
		}
		for _, m := range [2]grid.Move{grid.Right, grid.Down} {
			q := p.Add(m)
			if !b.free(q) || cornerDead(q) {
				continue
			}
			if b.isDest(p) && b.isDest(q) {
				continue
			}
			perp := perpendicularSides(m)
			for _, side := range perp {
				if b.wall(p.Add(side)) && b.wall(q.Add(side)) {
					b.attach(p, ForbidPair{A: p, B: q})
					b.attach(q, ForbidPair{A: p, B: q})
					break
				}
			}
		}
	}
}

func perpendicularSides(m grid.Move) [2]grid.Move {
	if m.IsHorizontal() {
		return [2]grid.Move{grid.Up, grid.Down}
	}
	return [2]grid.Move{grid.Left, grid.Right}
}

// addLShapes considers every 2x2 block; when exactly one corner is Wall and
// the other three cells are free and not all destinations, the diagonal
// pair not touching the wall is forbidden from holding boxes
// simultaneously -- the classic box-plus-wall-corner freeze.
func (b *builder) addLShapes() {
	for _, p := range b.static.Positions() {
		tl, tr, bl, br := p, p.Add(grid.Right), p.Add(grid.Down), p.Add(grid.Right).Add(grid.Down)
		cells := [4]board.Pos{tl, tr, bl, br}
		walls := [4]bool{b.wall(tl), b.wall(tr), b.wall(bl), b.wall(br)}
		wallCount := 0
		wallIdx := -1
		for i, w := range walls {
			if w {
				wallCount++
				wallIdx = i
			}
		}
		if wallCount != 1 {
			continue
		}
		allFree := true
		allDest := true
		for i, c := range cells {
			if i == wallIdx {
				continue
			}
			if !b.free(c) {
				allFree = false
			}
			if !b.isDest(c) {
				allDest = false
			}
		}
		if !allFree || allDest {
			continue
		}
		// Diagonal pairs are {tl,br} (index 0,3) and {tr,bl} (index 1,2).
		// The pair not containing the wall index is the forbidden one.
		var forbidden [2]board.Pos
		if wallIdx == 0 || wallIdx == 3 {
			forbidden = [2]board.Pos{tr, bl}
		} else {
			forbidden = [2]board.Pos{tl, br}
		}
		pred := ForbidPair{A: forbidden[0], B: forbidden[1]}
		b.attach(forbidden[0], pred)
		b.attach(forbidden[1], pred)
	}
}

// addSquares considers every free, not-all-destination 2x2 block with no
// wall on any full side, and forbids any three of its four cells from
// holding a box at once.
func (b *builder) addSquares() {
	for _, p := range b.static.Positions() {
		tl, tr, bl, br := p, p.Add(grid.Right), p.Add(grid.Down), p.Add(grid.Right).Add(grid.Down)
		cells := [4]board.Pos{tl, tr, bl, br}
		allFree, allDest := true, true
		for _, c := range cells {
			if !b.free(c) {
				allFree = false
			}
			if !b.isDest(c) {
				allDest = false
			}
		}
		if !allFree || allDest {
			continue
		}
		if b.squareSideIsWalled(cells) {
			continue
		}
		pred := ForbidThreeOfFour{Cells: cells}
		for _, c := range cells {
			b.attach(c, pred)
		}
	}
}

// squareSideIsWalled reports whether a full side of the 2x2 block (top,
// bottom, left or right edge) is bordered entirely by walls.
func (b *builder) squareSideIsWalled(cells [4]board.Pos) bool {
	tl, tr, bl, br := cells[0], cells[1], cells[2], cells[3]
	top := b.wall(tl.Add(grid.Up)) && b.wall(tr.Add(grid.Up))
	bottom := b.wall(bl.Add(grid.Down)) && b.wall(br.Add(grid.Down))
	left := b.wall(tl.Add(grid.Left)) && b.wall(bl.Add(grid.Left))
	right := b.wall(tr.Add(grid.Right)) && b.wall(br.Add(grid.Right))
	return top || bottom || left || right
}
