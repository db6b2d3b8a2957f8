package board_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapix/sokoban/board"
	"github.com/skapix/sokoban/grid"
)

func rows(lines ...string) [][]board.Cell {
	out := make([][]board.Cell, len(lines))
	for i, line := range lines {
		row := make([]board.Cell, len(line))
		for j, r := range line {
			switch r {
			case '#':
				row[j] = board.Wall
			case '@':
				row[j] = board.Unit
			case '$':
				row[j] = board.Box
			case '.':
				row[j] = board.Destination
			case '*':
				row[j] = board.BoxDestination
			case '+':
				row[j] = board.UnitDestination
			default:
				row[j] = board.Field
			}
		}
		out[i] = row
	}
	return out
}

func TestFromRowsTrimsFullyWalledBorder(t *testing.T) {
	// A rectangular wall border with nothing but the live cells inside gets
	// trimmed away entirely, row by row and then column by column.
	m, err := board.FromRows(rows(
		"#####",
		"#@$.#",
		"#####",
	))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, "@$.", m.String())
}

func TestFromRowsRejectsWrongUnitCount(t *testing.T) {
	_, err := board.FromRows(rows(
		"#####",
		"#@@$#",
		"#####",
	))
	var wrongUnit *board.WrongUnitCountError
	require.Error(t, err)
	assert.True(t, errors.As(err, &wrongUnit))
}

func TestFromRowsRejectsBoxDestinationMismatch(t *testing.T) {
	_, err := board.FromRows(rows(
		"#####",
		"#@$$#",
		"#####",
	))
	var mismatch *board.BoxDestinationMismatchError
	require.Error(t, err)
	assert.True(t, errors.As(err, &mismatch))
}

func TestFromRowsRejectsRaggedRows(t *testing.T) {
	_, err := board.FromRows([][]board.Cell{
		{board.Wall, board.Wall},
		{board.Wall},
	})
	assert.ErrorIs(t, err, board.ErrRaggedRows)
}

func TestFromRowsWallsOffUnreachableCells(t *testing.T) {
	// The bottom row is cut off from the unit by a solid wall row, so it gets
	// walled off by fillUnreachable and then trimmed away entirely.
	m, err := board.FromRows(rows(
		"@$.",
		"###",
		"...",
	))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, "@$.", m.String())
}

func TestClonePreservesContentsAndIsIndependent(t *testing.T) {
	m, err := board.FromRows(rows(
		"#####",
		"#@$.#",
		"#####",
	))
	require.NoError(t, err)
	cp := m.Clone()
	assert.Equal(t, m.String(), cp.String())

	gs := board.NewGameState(m)
	gs.Move(grid.Right)
	assert.NotEqual(t, m.String(), cp.String())
}

func TestSplit(t *testing.T) {
	m, err := board.FromRows(rows(
		"#####",
		"#@$.#",
		"#####",
	))
	require.NoError(t, err)
	static, boxes, unit := m.Split()
	require.Len(t, boxes, 1)
	assert.Equal(t, board.Pos{I: 0, J: 1}, boxes[0])
	assert.Equal(t, board.Pos{I: 0, J: 0}, unit)
	assert.False(t, static.At(unit).HasUnit())
	assert.False(t, static.At(boxes[0]).HasBox())
}

func TestGameStateMoveAndUndo(t *testing.T) {
	m, err := board.FromRows(rows(
		"#####",
		"#@$.#",
		"#####",
	))
	require.NoError(t, err)
	gs := board.NewGameState(m)

	md := gs.Move(grid.Right)
	assert.Equal(t, board.UnitBoxMove, md.Result)
	assert.Equal(t, board.Pos{I: 0, J: 1}, gs.Unit())
	assert.True(t, gs.IsWinningState())

	result := gs.Undo(md)
	assert.Equal(t, board.UnitBoxMove, result)
	assert.Equal(t, board.Pos{I: 0, J: 0}, gs.Unit())
	assert.False(t, gs.IsWinningState())
}

func TestGameStateIllegalPushIntoWallIsNoop(t *testing.T) {
	m, err := board.FromRows(rows(
		"@$",
		".#",
	))
	require.NoError(t, err)
	gs := board.NewGameState(m)

	md := gs.Move(grid.Right)
	assert.Equal(t, board.NoMove, md.Result)
	assert.Equal(t, board.Pos{I: 0, J: 0}, gs.Unit())

	md = gs.Move(grid.Down)
	assert.Equal(t, board.UnitMove, md.Result)
	assert.Equal(t, board.Pos{I: 1, J: 0}, gs.Unit())
}
