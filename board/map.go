package board

import (
	"errors"
	"fmt"

	"github.com/skapix/sokoban/grid"
)

// Construction errors. ErrWrongUnitCount and ErrBoxDestinationMismatch carry
// the offending counts; use errors.As to recover them.
var (
	ErrEmptyMap  = errors.New("board: map has no rows or no columns")
	ErrRaggedRows = errors.New("board: rows have unequal length")
)

// WrongUnitCountError reports that a map had a number of Unit cells other
// than exactly one.
type WrongUnitCountError struct{ N int }

func (e *WrongUnitCountError) Error() string {
	return fmt.Sprintf("board: map has %d unit cells, expected exactly 1", e.N)
}

// BoxDestinationMismatchError reports that the number of boxes and the
// number of destinations in a map differ.
type BoxDestinationMismatchError struct{ Boxes, Destinations int }

func (e *BoxDestinationMismatchError) Error() string {
	return fmt.Sprintf("board: %d boxes but %d destinations", e.Boxes, e.Destinations)
}

// Map is a dense Cell grid, movable flags (Unit, Box) included. MapStatic is
// the same representation with those flags always stripped; the alias
// documents which invariant a given function expects.
type Map struct {
	cells grid.Mat[Cell]
}

// MapStatic is a Map whose Unit and Box bits are never set — only Wall,
// Field and Destination are meaningful.
type MapStatic = Map

// Rows and Cols expose the grid dimensions.
func (m *Map) Rows() int { return m.cells.Rows() }
func (m *Map) Cols() int { return m.cells.Cols() }

// At returns the cell at p. Out-of-bounds positions are treated as Wall,
// matching spec's "safe" accessor convention.
func (m *Map) At(p Pos) Cell {
	c, err := m.cells.At(p)
	if err != nil {
		return Wall
	}
	return c
}

// Pos is a re-export of grid.Pos for callers that only import board.
type Pos = grid.Pos

// set is the unchecked, in-bounds-only mutator used internally during
// construction and GameState updates.
func (m *Map) set(p Pos, c Cell) {
	m.cells.MustSet(p, c)
}

// Positions returns every position in the map in row-major order.
func (m *Map) Positions() []Pos {
	return m.cells.Positions()
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	cp := grid.NewMat[Cell](m.Rows(), m.Cols())
	for _, p := range m.Positions() {
		cp.MustSet(p, m.At(p))
	}
	return &Map{cells: cp}
}

// FromRows builds a validated Map from a rectangular grid of Cells, applying
// the construction algorithm of spec §4.2:
//  1. every row must have the same length;
//  2. cells unreachable from the unit (ignoring boxes as blockers) are
//     filled with Wall, then the unit and the boxes reachable from it are
//     restored;
//  3. outer rows/columns that are entirely Wall are trimmed, iteratively;
//  4. exactly one Unit cell, and the box count must equal the destination
//     count.
func FromRows(rows [][]Cell) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("board: row %d has length %d, expected %d: %w", i, len(row), width, ErrRaggedRows)
		}
	}

	cells := grid.NewMat[Cell](len(rows), width)
	for i, row := range rows {
		for j, c := range row {
			cells.MustSet(Pos{i, j}, c)
		}
	}
	m := &Map{cells: cells}

	if err := m.fillUnreachable(); err != nil {
		return nil, err
	}
	m.trimWalls()

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// fillUnreachable walls off every cell not reachable, via free cells only
// (boxes are not treated as blockers, per spec's "ignoring boxes is
// optional; the reference implementation ignores them"), from the unit's
// starting cell. The unit and every box in the reachable component are
// restored afterwards.
func (m *Map) fillUnreachable() error {
	unit, err := m.findUnit()
	if err != nil {
		return err
	}

	reachable := grid.NewBoolMat(m.Rows(), m.Cols())
	queue := []Pos{unit}
	grid.SetTrue(&reachable, unit)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, mv := range grid.Moves {
			n := p.Add(mv)
			if !m.cells.Contains(n) {
				continue
			}
			if reachable.MustAt(n) {
				continue
			}
			if m.At(n).IsWall() {
				continue
			}
			grid.SetTrue(&reachable, n)
			queue = append(queue, n)
		}
	}

	for _, p := range m.Positions() {
		if !reachable.MustAt(p) {
			m.set(p, Wall)
		}
	}
	return nil
}

func (m *Map) findUnit() (Pos, error) {
	for _, p := range m.Positions() {
		if m.At(p).HasUnit() {
			return p, nil
		}
	}
	return Pos{}, &WrongUnitCountError{N: 0}
}

// trimWalls repeatedly strips any leading/trailing row or column that is
// entirely Wall.
func (m *Map) trimWalls() {
	for {
		trimmed := false
		if m.Rows() > 1 && m.rowIsAllWall(0) {
			m.dropRow(0)
			trimmed = true
		}
		if m.Rows() > 1 && m.rowIsAllWall(m.Rows()-1) {
			m.dropRow(m.Rows() - 1)
			trimmed = true
		}
		if m.Cols() > 1 && m.colIsAllWall(0) {
			m.dropCol(0)
			trimmed = true
		}
		if m.Cols() > 1 && m.colIsAllWall(m.Cols()-1) {
			m.dropCol(m.Cols() - 1)
			trimmed = true
		}
		if !trimmed {
			return
		}
	}
}

func (m *Map) rowIsAllWall(i int) bool {
	for j := 0; j < m.Cols(); j++ {
		if !m.At(Pos{i, j}).IsWall() {
			return false
		}
	}
	return true
}

func (m *Map) colIsAllWall(j int) bool {
	for i := 0; i < m.Rows(); i++ {
		if !m.At(Pos{i, j}).IsWall() {
			return false
		}
	}
	return true
}

func (m *Map) dropRow(i int) {
	cp := grid.NewMat[Cell](m.Rows()-1, m.Cols())
	dst := 0
	for src := 0; src < m.Rows(); src++ {
		if src == i {
			continue
		}
		for j := 0; j < m.Cols(); j++ {
			cp.MustSet(Pos{dst, j}, m.At(Pos{src, j}))
		}
		dst++
	}
	m.cells = cp
}

func (m *Map) dropCol(j int) {
	cp := grid.NewMat[Cell](m.Rows(), m.Cols()-1)
	for i := 0; i < m.Rows(); i++ {
		dst := 0
		for src := 0; src < m.Cols(); src++ {
			if src == j {
				continue
			}
			cp.MustSet(Pos{i, dst}, m.At(Pos{i, src}))
			dst++
		}
	}
	m.cells = cp
}

func (m *Map) validate() error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return ErrEmptyMap
	}
	units, boxes, dests := 0, 0, 0
	for _, p := range m.Positions() {
		c := m.At(p)
		if c.HasUnit() {
			units++
		}
		if c.HasBox() {
			boxes++
		}
		if c.HasDestination() {
			dests++
		}
	}
	if units != 1 {
		return &WrongUnitCountError{N: units}
	}
	if boxes != dests {
		return &BoxDestinationMismatchError{Boxes: boxes, Destinations: dests}
	}
	return nil
}

// Split decomposes m into its static layout (no Unit or Box bits), the
// sorted list of box positions, and the unit position. This is the
// Map -> (MapStatic, boxes, unit) split spec §4 names as a responsibility of
// the utility layer.
func (m *Map) Split() (static *Map, boxes []Pos, unit Pos) {
	static = m.Clone()
	boxes = make([]Pos, 0)
	for _, p := range m.Positions() {
		c := static.At(p)
		if c.HasUnit() {
			unit = p
			c = RemoveItem(c, Unit)
		}
		if c.HasBox() {
			boxes = append(boxes, p)
			c = RemoveItem(c, Box)
		}
		static.set(p, c)
	}
	return static, boxes, unit
}

func (m *Map) String() string {
	s := ""
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			s += m.At(Pos{i, j}).String()
		}
		if i != m.Rows()-1 {
			s += "\n"
		}
	}
	return s
}
