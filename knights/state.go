package knights

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/statespace/space"
)

// State is an immutable board configuration.
// The zero State is the empty board.
type State struct {
	occupied uint64
}

// compile-time check
var _ space.State = State{}

// New returns the State with pieces on locs.
// Returns ErrRange if any location is off the board.
func New(locs ...Location) (State, error) {
	var b uint64
	for i, l := range locs {
		if !l.InBounds() {
			return State{}, fmt.Errorf("%w: entry %d is %s", ErrRange, i, l)
		}
		b |= bit(l)
	}

	return State{occupied: b}, nil
}

// MustNew is like New but panics on error. Intended for fixtures.
func MustNew(locs ...Location) State {
	s, err := New(locs...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromPairs returns the State with pieces on the given [row, col] pairs.
// Returns ErrFormat if an entry does not hold exactly two integers and
// ErrRange if a coordinate is off the board.
func FromPairs(pairs [][]int) (State, error) {
	locs := make([]Location, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return State{}, fmt.Errorf("%w: entry %d has %d values, want 2", ErrFormat, i, len(p))
		}
		locs = append(locs, Location{Row: p[0], Col: p[1]})
	}

	return New(locs...)
}

// Parse reads the rendering produced by String: eight rows of eight
// characters, 'K' for a piece and '.' for an empty square. Leading and
// trailing blank space around the board and around each row is ignored.
// Returns ErrFormat for any other shape or character.
func Parse(board string) (State, error) {
	rows := strings.Split(strings.TrimSpace(board), "\n")
	if len(rows) != Size {
		return State{}, fmt.Errorf("%w: board has %d rows, want %d", ErrFormat, len(rows), Size)
	}
	var b uint64
	for r, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != Size {
			return State{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrFormat, r, len(row), Size)
		}
		for c := 0; c < Size; c++ {
			switch row[c] {
			case 'K':
				b |= 1 << index(r, c)
			case '.':
			default:
				return State{}, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrFormat, row[c], r, c)
			}
		}
	}

	return State{occupied: b}, nil
}

// Key returns the bitboard as 16 hex digits.
func (s State) Key() string {
	return fmt.Sprintf("%016x", s.occupied)
}

// Equal reports whether other is a knights State (value or pointer) with the
// same occupied squares.
func (s State) Equal(other space.State) bool {
	switch o := other.(type) {
	case State:
		return s.occupied == o.occupied
	case *State:
		return o != nil && s.occupied == o.occupied
	default:
		return false
	}
}

// Len returns the number of pieces on the board.
func (s State) Len() int {
	return bits.OnesCount64(s.occupied)
}

// Has reports whether l holds a piece. Off-board locations never do.
func (s State) Has(l Location) bool {
	return l.InBounds() && s.occupied&bit(l) != 0
}

// Occupied returns the occupied locations in row-major order.
func (s State) Occupied() []Location {
	locs := make([]Location, 0, s.Len())
	eachSquare(s.occupied, func(idx int) {
		locs = append(locs, locationAt(idx))
	})

	return locs
}

// String renders the board as eight rows of 'K' and '.', row 0 first,
// separated by newlines (no trailing newline).
func (s State) String() string {
	var sb strings.Builder
	sb.Grow(Cells + Size - 1)
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if s.occupied&(1<<index(r, c)) != 0 {
				sb.WriteByte('K')
			} else {
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}
