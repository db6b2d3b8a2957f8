package board

import "github.com/skapix/sokoban/grid"

// MoveResult classifies the effect a move had.
type MoveResult int

const (
	// NoMove means the move was illegal and nothing changed.
	NoMove MoveResult = iota
	// UnitMove means only the unit stepped.
	UnitMove
	// UnitBoxMove means the unit stepped and pushed a box ahead of it.
	UnitBoxMove
)

// MoveDirection is the history record GameState.Move returns; replaying
// Undo(md) in reverse order restores the map exactly.
type MoveDirection struct {
	Result MoveResult
	Move   grid.Move
}

// GameState is the authoritative interactive wrapper around a Map: it caches
// the unit's position so callers don't need to scan the grid, and keeps that
// cache and the map's Unit bit in lock-step across every mutation.
type GameState struct {
	Map  *Map
	unit Pos
}

// NewGameState wraps m, locating its single Unit cell. m must already
// satisfy Map's construction invariants.
func NewGameState(m *Map) *GameState {
	unit, err := m.findUnit()
	if err != nil {
		panic(err)
	}
	return &GameState{Map: m, unit: unit}
}

// Unit returns the unit's current position.
func (g *GameState) Unit() Pos {
	return g.unit
}

// CanMove reports whether the unit can step in direction dir: the cell
// ahead must be free, or hold a box whose own far side is free.
func (g *GameState) CanMove(dir grid.Move) bool {
	ahead := g.unit.Add(dir)
	aheadCell := g.Map.At(ahead)
	if aheadCell.IsFree() {
		return true
	}
	if !aheadCell.HasBox() {
		return false
	}
	beyond := ahead.Add(dir)
	return g.Map.At(beyond).IsFree()
}

// Move attempts to step the unit in direction dir, pushing a box if one is
// immediately ahead. It returns NoMove without mutating the map if the move
// is illegal.
func (g *GameState) Move(dir grid.Move) MoveDirection {
	if !g.CanMove(dir) {
		return MoveDirection{Result: NoMove, Move: dir}
	}
	ahead := g.unit.Add(dir)
	aheadCell := g.Map.At(ahead)

	result := UnitMove
	if aheadCell.HasBox() {
		beyond := ahead.Add(dir)
		g.Map.set(ahead, RemoveItem(aheadCell, Box))
		g.Map.set(beyond, PlaceItem(g.Map.At(beyond), Box))
		result = UnitBoxMove
	}

	g.Map.set(g.unit, RemoveItem(g.Map.At(g.unit), Unit))
	g.Map.set(ahead, PlaceItem(g.Map.At(ahead), Unit))
	g.unit = ahead

	return MoveDirection{Result: result, Move: dir}
}

// Undo reverses the most recently applied MoveDirection. The caller is
// responsible for driving a stack of MoveDirections in last-in-first-out
// order; Undo itself is stateless beyond the GameState it mutates.
func (g *GameState) Undo(md MoveDirection) MoveResult {
	if md.Result == NoMove {
		return NoMove
	}
	back := md.Move.Reverse()
	current := g.unit
	origin := current.Add(back)

	g.Map.set(current, RemoveItem(g.Map.At(current), Unit))
	g.Map.set(origin, PlaceItem(g.Map.At(origin), Unit))
	g.unit = origin

	if md.Result == UnitBoxMove {
		boxFrom := current.Add(md.Move)
		g.Map.set(boxFrom, RemoveItem(g.Map.At(boxFrom), Box))
		g.Map.set(current, PlaceItem(g.Map.At(current), Box))
	}
	return md.Result
}

// IsWinningState reports whether every Destination cell also holds a Box
// and every Box sits on a Destination: no cell holds Box without
// Destination, and none holds Destination without Box.
func (g *GameState) IsWinningState() bool {
	for _, p := range g.Map.Positions() {
		c := g.Map.At(p)
		if c.HasBox() != c.HasDestination() {
			return false
		}
	}
	return true
}
