package hungarian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapix/sokoban/hungarian"
)

func TestSolveFiveByFive(t *testing.T) {
	cost := [][]int{
		{32, 28, 4, 26, 4},
		{17, 19, 4, 17, 4},
		{4, 4, 5, 4, 4},
		{17, 14, 4, 14, 4},
		{21, 16, 4, 13, 4},
	}
	assignment, total := hungarian.Solve(cost)

	require.Len(t, assignment, 5)
	assert.Equal(t, []int{2, 4, 0, 1, 3}, assignment)
	assert.Equal(t, 39, total)
}

func TestSolveIsAPermutation(t *testing.T) {
	cost := [][]int{
		{32, 28, 4, 26, 4},
		{17, 19, 4, 17, 4},
		{4, 4, 5, 4, 4},
		{17, 14, 4, 14, 4},
		{21, 16, 4, 13, 4},
	}
	assignment, _ := hungarian.Solve(cost)

	seen := make(map[int]bool)
	for _, j := range assignment {
		assert.False(t, seen[j], "column %d assigned twice", j)
		seen[j] = true
	}
	assert.Len(t, seen, len(cost))
}

func TestSolveOptimalityAgainstBruteForce(t *testing.T) {
	cost := [][]int{
		{9, 2, 7, 8},
		{6, 4, 3, 7},
		{5, 8, 1, 8},
		{7, 6, 9, 4},
	}
	_, total := hungarian.Solve(cost)

	best := bruteForceAssignment(cost)
	assert.Equal(t, best, total)
}

func TestSolveRespectsInfeasiblePairs(t *testing.T) {
	cost := [][]int{
		{hungarian.Inf, 1},
		{1, hungarian.Inf},
	}
	assignment, total := hungarian.Solve(cost)

	assert.Equal(t, []int{1, 0}, assignment)
	assert.Equal(t, 2, total)
}

func TestSolveSaturatesFromAdjacency(t *testing.T) {
	adjacency := [][]int{
		{0, 1, 1},
		{0, 1, 0},
		{1, 0, 1},
	}
	cost := make([][]int, len(adjacency))
	for i, row := range adjacency {
		cost[i] = make([]int, len(row))
		for j, edge := range row {
			if edge == 1 {
				cost[i][j] = 0
			} else {
				cost[i][j] = hungarian.Inf
			}
		}
	}

	assignment, total := hungarian.Solve(cost)
	assert.Equal(t, []int{2, 1, 0}, assignment)
	assert.Equal(t, 0, total)
}

func TestSolveEmptyMatrix(t *testing.T) {
	assignment, total := hungarian.Solve(nil)
	assert.Nil(t, assignment)
	assert.Equal(t, 0, total)
}

func TestSolvePanicsOnInfeasibleRow(t *testing.T) {
	cost := [][]int{
		{hungarian.Inf, hungarian.Inf},
		{1, 2},
	}
	assert.Panics(t, func() {
		hungarian.Solve(cost)
	})
}

func bruteForceAssignment(cost [][]int) int {
	n := len(cost)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := -1
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			total := 0
			for i, j := range perm {
				total += cost[i][j]
			}
			if best == -1 || total < best {
				best = total
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)
	return best
}
