package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skapix/sokoban/grid"
)

func TestMoveReverse(t *testing.T) {
	for _, m := range grid.Moves {
		assert.Equal(t, m, m.Reverse().Reverse())
	}
}

func TestPosAddSub(t *testing.T) {
	p := grid.Pos{I: 2, J: 3}
	for _, m := range grid.Moves {
		assert.Equal(t, p, p.Add(m).Sub(m))
	}
}

func TestRestoreMove(t *testing.T) {
	p := grid.Pos{I: 1, J: 1}
	for _, m := range grid.Moves {
		assert.Equal(t, m, grid.RestoreMove(p, p.Add(m)))
	}
}

func TestRestoreMovePanicsOnNonAdjacent(t *testing.T) {
	assert.Panics(t, func() {
		grid.RestoreMove(grid.Pos{I: 0, J: 0}, grid.Pos{I: 2, J: 2})
	})
}

func TestMatBounds(t *testing.T) {
	m := grid.NewMat[int](3, 4)
	assert.True(t, m.Contains(grid.Pos{I: 0, J: 0}))
	assert.True(t, m.Contains(grid.Pos{I: 2, J: 3}))
	assert.False(t, m.Contains(grid.Pos{I: 3, J: 0}))
	assert.False(t, m.Contains(grid.Pos{I: 0, J: 4}))

	_, err := m.At(grid.Pos{I: 10, J: 10})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	m.MustSet(grid.Pos{I: 1, J: 1}, 42)
	assert.Equal(t, 42, m.MustAt(grid.Pos{I: 1, J: 1}))
}

func TestBoolMatSetTrue(t *testing.T) {
	m := grid.NewBoolMat(2, 2)
	grid.SetTrue(&m, grid.Pos{I: 0, J: 0})
	grid.SetTrue(&m, grid.Pos{I: 5, J: 5}) // out of bounds, silently ignored
	assert.True(t, m.MustAt(grid.Pos{I: 0, J: 0}))
	assert.False(t, m.MustAt(grid.Pos{I: 1, J: 1}))
}
