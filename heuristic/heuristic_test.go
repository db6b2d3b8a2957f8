package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapix/sokoban/board"
	"github.com/skapix/sokoban/heuristic"
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

func TestEvaluateZeroWhenBoxesAlreadyPlaced(t *testing.T) {
	static := mustStatic(t,
		"#####",
		"#@$.#",
		"#####",
	)
	h := heuristic.New(heuristic.HungarianTaxicab)
	h.Init(static)
	assert.Equal(t, 0, h.Evaluate([]board.Pos{{I: 0, J: 2}}))
}

func TestEvaluateCountsPushesAlongCorridor(t *testing.T) {
	static := mustStatic(t,
		"#####",
		"#@$.#",
		"#####",
	)
	h := heuristic.New(heuristic.HungarianTaxicab)
	h.Init(static)
	assert.Equal(t, 1, h.Evaluate([]board.Pos{{I: 0, J: 1}}))
}

func TestEvaluateInOpenRoomAccountsForTurns(t *testing.T) {
	// After border trimming this is a 3x3 room with the single destination
	// in its bottom-right corner.
	static := mustStatic(t,
		"#####",
		"#@  #",
		"#  $#",
		"#  .#",
		"#####",
	)
	h := heuristic.New(heuristic.HungarianTaxicabPush)
	h.Init(static)
	assert.Equal(t, 0, h.Evaluate([]board.Pos{{I: 2, J: 2}}))
	assert.Equal(t, 1, h.Evaluate([]board.Pos{{I: 2, J: 1}}))
	assert.Equal(t, 2, h.Evaluate([]board.Pos{{I: 1, J: 1}}))
}

func TestEvaluatePanicsWithoutInit(t *testing.T) {
	h := heuristic.New(heuristic.HungarianTaxicab)
	assert.Panics(t, func() {
		h.Evaluate([]board.Pos{{I: 0, J: 0}})
	})
}
