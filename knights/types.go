package knights

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Size is the board edge length; Cells is the number of squares.
const (
	Size  = 8
	Cells = Size * Size
)

// Sentinel errors for board construction and moves.
var (
	// ErrFormat indicates an input entry of the wrong shape.
	ErrFormat = errors.New("knights: malformed location")
	// ErrRange indicates a coordinate outside [0,7].
	ErrRange = errors.New("knights: location outside board range [0,7]x[0,7]")
	// ErrIllegalMove indicates an action that is not a legal knight move on the board.
	ErrIllegalMove = errors.New("knights: illegal move")
)

// Location is a board square.
type Location struct {
	Row, Col int
}

// InBounds reports whether l lies on the board.
func (l Location) InBounds() bool {
	return inBounds(l.Row, l.Col)
}

// String renders l as "(row,col)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}

// MarshalJSON encodes l as [row,col].
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{l.Row, l.Col})
}

// UnmarshalJSON decodes a [row,col] pair. The range is not checked here.
func (l *Location) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: want [row,col], got %d values", ErrFormat, len(pair))
	}
	l.Row, l.Col = pair[0], pair[1]

	return nil
}
