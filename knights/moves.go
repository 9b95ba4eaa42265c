package knights

import (
	"fmt"

	"github.com/katalvlaran/statespace/space"
)

// Successors returns every board reachable by moving one piece with a knight
// jump onto an empty, in-bounds square, paired with a unit-cost action
// (source = origin square, target = landing square).
//
// Pieces are taken in row-major order and jumps in knightOffsets order, so
// the result is deterministic. An empty or full board has no successors.
// Complexity: O(pieces × 8).
func (s State) Successors() []space.Transition {
	succ := make([]space.Transition, 0, 8*s.Len())
	eachSquare(s.occupied, func(idx int) {
		from := locationAt(idx)
		for _, d := range knightOffsets {
			to := Location{Row: from.Row + d[0], Col: from.Col + d[1]}
			if !to.InBounds() || s.occupied&bit(to) != 0 {
				continue
			}
			succ = append(succ, space.Transition{
				Action: space.UnitAction(from, to),
				Next:   State{occupied: s.occupied&^bit(from) | bit(to)},
			})
		}
	})

	return succ
}

// Apply performs the move described by a and returns the resulting board.
// Returns ErrIllegalMove unless a carries Location descriptors forming a
// knight jump from an occupied square to an empty in-bounds square.
func (s State) Apply(a space.Action) (State, error) {
	from, ok1 := a.Source().(Location)
	to, ok2 := a.Target().(Location)
	switch {
	case !ok1 || !ok2:
		return s, fmt.Errorf("%w: %s does not use board locations", ErrIllegalMove, a)
	case !from.InBounds() || !to.InBounds():
		return s, fmt.Errorf("%w: %s leaves the board", ErrIllegalMove, a)
	case !isKnightJump(from, to):
		return s, fmt.Errorf("%w: %s is not a knight jump", ErrIllegalMove, a)
	case !s.Has(from):
		return s, fmt.Errorf("%w: no piece at %s", ErrIllegalMove, from)
	case s.Has(to):
		return s, fmt.Errorf("%w: %s is occupied", ErrIllegalMove, to)
	}

	return State{occupied: s.occupied&^bit(from) | bit(to)}, nil
}

// Occupies returns a goal accepting knights States that hold a piece on
// every one of locs. Other State types are rejected.
func Occupies(locs ...Location) space.Goal {
	var want uint64
	for _, l := range locs {
		if !l.InBounds() {
			// an off-board square can never be occupied
			return func(space.State) bool { return false }
		}
		want |= bit(l)
	}

	return func(s space.State) bool {
		var b uint64
		switch ks := s.(type) {
		case State:
			b = ks.occupied
		case *State:
			if ks == nil {
				return false
			}
			b = ks.occupied
		default:
			return false
		}
		return b&want == want
	}
}
