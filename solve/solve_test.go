package solve

import (
	"math"
	"testing"
)

// corridorState is a minimal, self-contained test fixture for the generic
// engine: a token moving along an integer line at a fixed push cost, the
// same one-dimensional shape a Sokoban box push has. It exists so these
// tests exercise search correctness without depending on a concrete domain
// package (solve cannot import sokoban, which depends on solve).
type corridorState struct {
	pos      int
	target   int
	cost     float64
	boundary bool // if true, pos may never go negative (one-directional corridor)
}

func (s corridorState) Cost(ctx Context) float64 { return s.cost }

func (s corridorState) IsGoal(ctx Context) bool { return s.pos == s.target }

func (s corridorState) Heuristic(ctx Context) float64 { return 0 }

func (s corridorState) Expand(ctx Context) []State {
	var children []State
	if !s.boundary || s.pos > 0 {
		children = append(children, corridorState{s.pos - 1, s.target, s.cost + 1, s.boundary})
	}
	children = append(children, corridorState{s.pos + 1, s.target, s.cost + 1, s.boundary})
	return children
}

func sameCorridorPos(a, b State) bool {
	return a.(corridorState).pos == b.(corridorState).pos
}

type corridorCPMap map[int]CPNode

func (c corridorCPMap) Get(s State) (CPNode, bool) {
	v, ok := c[s.(corridorState).pos]
	return v, ok
}
func (c corridorCPMap) Put(s State, value CPNode) { c[s.(corridorState).pos] = value }
func (c *corridorCPMap) Clear()                   { *c = make(corridorCPMap) }

func solveCorridor(t *testing.T, algorithm Algorithm, constraint Constraint, start corridorState, wantCost float64) {
	t.Helper()
	result := NewSolver(start).Algorithm(algorithm).Constraint(constraint).Solve()
	if !result.Solved() {
		t.Fatalf("(%v,%v): expected a solution from %d to %d", algorithm, constraint, start.pos, start.target)
	}
	got := result.GoalState().(corridorState)
	if got.pos != start.target {
		t.Errorf("(%v,%v): expected to reach %d, reached %d", algorithm, constraint, start.target, got.pos)
	}
	if got.cost != wantCost {
		t.Errorf("(%v,%v): expected cost %v, got %v", algorithm, constraint, wantCost, got.cost)
	}
}

func TestEveryAlgorithmFindsTheOptimalCorridorPush(t *testing.T) {
	start := corridorState{pos: 0, target: 3}
	cp := make(corridorCPMap)
	cases := []struct {
		algorithm  Algorithm
		constraint Constraint
	}{
		{Astar, NoConstraint()},
		{Astar, NoLoopConstraint(50, sameCorridorPos)},
		{Astar, CheapestPathConstraint(&cp)},
		{IDAstar, NoLoopConstraint(50, sameCorridorPos)},
		{BreadthFirst, NoLoopConstraint(50, sameCorridorPos)},
	}
	for _, c := range cases {
		solveCorridor(t, c.algorithm, c.constraint, start, 3)
	}
}

func TestDepthFirstFindsABoundedCorridorPath(t *testing.T) {
	// With a wall at pos 0, the only way out is to the right: depth-first
	// should find exactly the direct path, not wander into a dead end.
	start := corridorState{pos: 0, target: 2, boundary: true}
	result := NewSolver(start).
		Algorithm(DepthFirst).
		Constraint(NoLoopConstraint(50, sameCorridorPos)).
		Solve()
	if !result.Solved() {
		t.Fatal("expected a solution out of the bounded corridor")
	}
	if got := result.GoalState().(corridorState); got.pos != 2 {
		t.Errorf("expected to reach 2, reached %d", got.pos)
	}
}

func TestIDAStarWithInfiniteContourNeverSolves(t *testing.T) {
	result := NewSolver(corridorState{pos: 0, target: 100, cost: math.Inf(1)}).
		Algorithm(IDAstar).
		Solve()
	if len(result.Solution) != 0 {
		t.Error("expected no solution when the root's own cost is already infinite")
	}
}

func TestWithRootAlreadyGoal(t *testing.T) {
	result := NewSolver(corridorState{pos: 5, target: 5}).
		Algorithm(IDAstar).
		Solve()
	if len(result.Solution) != 1 {
		t.Errorf("expected a one-step solution, got %v", len(result.Solution))
	}
}

type dummyState struct {
	State
	name string
}

func dummyNode(parent *node, name string, costs float64) *node {
	return &node{parent, dummyState{nil, name}, costs}
}

func equalDummyStates(a, b State) bool {
	return a.(dummyState).name == b.(dummyState).name
}

func TestNoLoopConstraintRejectsRepeatedAncestors(t *testing.T) {
	assertEqual := func(name string, value, expected interface{}) {
		if value != expected {
			t.Errorf("%v - Expected %v, but was %v", name, expected, value)
		}
	}

	c := NoLoopConstraint(2, equalDummyStates).(iconstraint)
	x1 := dummyNode(nil, "x", 1)
	assertEqual("x1", c.onExpand(x1), false)
	x2 := dummyNode(x1, "x", 1)
	assertEqual("same parent", c.onExpand(x2), true)

	y1 := dummyNode(x1, "y", 1)
	assertEqual("y1", c.onExpand(y1), false)

	// x - y - x
	x3 := dummyNode(y1, "x", 1)
	assertEqual("same grandparent", c.onExpand(x3), true)

	z1 := dummyNode(y1, "z", 1)
	assertEqual("z1", c.onExpand(z1), false)

	// x - y - z - x
	x4 := dummyNode(z1, "x", 1)
	assertEqual("same grandgrandparent, beyond the limit", c.onExpand(x4), false)
}

func TestRingbuffer(t *testing.T) {
	mknode := func(i int) *node {
		return &node{nil, nil, float64(i)}
	}
	b := breadthFirst()
	lastTaken := -1
	for i := 0; i < 777; i++ {
		b.Add(mknode(i))
		if i%4 == 0 {
			taken := b.Take()
			if taken == nil {
				t.Errorf("Expected node %v at head of the buffer, but the buffer was empty", lastTaken+1)
				return
			}
			if int(taken.value) != lastTaken+1 {
				t.Errorf("Expected element %v from the buffer, but was %v", lastTaken+1, taken.value)
				return
			}
			lastTaken = int(taken.value)
		}
	}
}
