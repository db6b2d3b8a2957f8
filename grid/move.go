// Package grid provides the 2-D coordinate and direction primitives shared
// by every other package in this module: a row-major Pos, the four cardinal
// Moves, and a dense generic Mat[T] grid.
package grid

import "fmt"

// Move is one of the four cardinal directions a unit (or a box it pushes)
// can travel.
type Move int

const (
	Left Move = iota
	Right
	Up
	Down
)

// Moves lists all four directions in a stable order, useful for iterating
// push candidates around a box.
var Moves = [4]Move{Left, Right, Up, Down}

func (m Move) String() string {
	switch m {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Delta returns the (di, dj) row/column offset of one step in direction m.
func (m Move) Delta() (di, dj int) {
	switch m {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	}
	panic(fmt.Sprintf("grid: invalid Move %d", int(m)))
}

// Reverse returns the opposite direction.
func (m Move) Reverse() Move {
	switch m {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	panic(fmt.Sprintf("grid: invalid Move %d", int(m)))
}

// ClockwiseRotate returns the direction 90 degrees clockwise from m.
func (m Move) ClockwiseRotate() Move {
	switch m {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	}
	panic(fmt.Sprintf("grid: invalid Move %d", int(m)))
}

// IsHorizontal reports whether m moves along a row (Left/Right).
func (m Move) IsHorizontal() bool {
	return m == Left || m == Right
}

// IsVertical reports whether m moves along a column (Up/Down).
func (m Move) IsVertical() bool {
	return m == Up || m == Down
}
