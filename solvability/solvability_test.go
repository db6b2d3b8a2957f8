package solvability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapix/sokoban/board"
	"github.com/skapix/sokoban/solvability"
)

func mustStatic(t *testing.T, lines ...string) *board.Map {
	t.Helper()
	rows := make([][]board.Cell, len(lines))
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
			default:
				row[j] = board.Field
			}
		}
		rows[i] = row
	}
	m, err := board.FromRows(rows)
	require.NoError(t, err)
	static, _, _ := m.Split()
	return static
}

func TestCornerDeadRejectsNonDestinationCorner(t *testing.T) {
	// After border trimming this collapses to a 3x3 open room; every true
	// corner of that room (where two orthogonal map edges meet) is dead
	// unless it's a destination.
	static := mustStatic(t,
		"#####",
		"#@  #",
		"#  $#",
		"#  .#",
		"#####",
	)
	solvMap := solvability.Build(static, 1)

	assert.False(t, solvMap.IsValid(board.Pos{I: 0, J: 0}, nil), "non-destination corner must be dead")
	assert.True(t, solvMap.IsValid(board.Pos{I: 2, J: 2}, nil), "a destination corner is never dead")
}

func TestLineCapRejectsMoreBoxesThanDestinations(t *testing.T) {
	// A single-row map has virtual walls above and below every cell, so the
	// whole row is one line-capped run with exactly one destination.
	static := mustStatic(t,
		"#####",
		"#@$.#",
		"#####",
	)
	require.Equal(t, 1, static.Rows())
	solvMap := solvability.Build(static, 1)

	field := board.Pos{I: 0, J: 1}
	oneBox := []board.Pos{field}
	twoBoxes := []board.Pos{{I: 0, J: 0}, field}

	assert.True(t, solvMap.IsValid(field, oneBox))
	assert.False(t, solvMap.IsValid(field, twoBoxes), "the run only has one destination for two candidate boxes")
}
