package reach

import (
	"sort"

	"github.com/skapix/sokoban/board"
)

// MapState is the mutable pose the search explores: a sorted box list and a
// canonicalised unit position. Two MapStates are equal iff their box
// sequences and canonical units match.
type MapState struct {
	Boxes []board.Pos
	Unit  board.Pos
}

// NewMapState sorts boxes ascending (row-major) and replaces unit with the
// canonical representative of its reachable component, as spec §3 requires.
func NewMapState(static *board.Map, boxes []board.Pos, unit board.Pos) MapState {
	sorted := make([]board.Pos, len(boxes))
	copy(sorted, boxes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	canonical := CanonicalUnit(static, sorted, unit)
	return MapState{Boxes: sorted, Unit: canonical}
}

// Equal reports whether s and o have identical box sequences and units.
// Both are assumed already canonical (sorted boxes, canonical unit).
func (s MapState) Equal(o MapState) bool {
	if s.Unit != o.Unit || len(s.Boxes) != len(o.Boxes) {
		return false
	}
	for i := range s.Boxes {
		if s.Boxes[i] != o.Boxes[i] {
			return false
		}
	}
	return true
}

// fnvOffset and fnvPrime seed the order-sensitive mix below; they're the
// same 64-bit FNV constants spec §4.9 asks for, extended with a second odd
// multiplier so the unit and each box contribute independently.
const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
	mixPrime  = 0x9E3779B97F4A7C15
)

// Hash returns an order-sensitive digest of s: two states with the same
// boxes in different positions in the slice (which cannot happen for a
// canonical, sorted MapState, but could for a caller-built one) hash
// differently, and the unit is mixed in independently of box count.
func (s MapState) Hash() uint64 {
	h := uint64(fnvOffset)
	mix := func(v uint64) {
		h ^= v
		h *= fnvPrime
	}
	mix(uint64(s.Unit.I)*mixPrime ^ uint64(s.Unit.J))
	for i, b := range s.Boxes {
		weight := uint64(i+1) * mixPrime
		mix((uint64(b.I)*mixPrime ^ uint64(b.J)) + weight)
	}
	return h
}
