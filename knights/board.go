package knights

import "math/bits"

// knightOffsets are the eight (Δrow, Δcol) knight jumps, in the order
// successors are generated.
var knightOffsets = [8][2]int{
	{-1, 2}, {1, 2}, {-2, 1}, {2, 1},
	{-1, -2}, {1, -2}, {-2, -1}, {2, -1},
}

// inBounds reports whether (r,c) lies within the board.
// Complexity: O(1).
func inBounds(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

// index maps (r,c) to a row-major bit index: r*Size + c.
func index(r, c int) uint {
	return uint(r*Size + c)
}

// locationAt converts a row-major bit index back to a Location.
func locationAt(idx int) Location {
	return Location{Row: idx / Size, Col: idx % Size}
}

// bit returns the bitboard mask for l. l must be in bounds.
func bit(l Location) uint64 {
	return 1 << index(l.Row, l.Col)
}

// eachSquare calls fn with the index of every set bit of b, lowest first
// (row-major order).
func eachSquare(b uint64, fn func(idx int)) {
	for b != 0 {
		idx := bits.TrailingZeros64(b)
		fn(idx)
		b &= b - 1
	}
}

// isKnightJump reports whether from→to is one of the knight offsets.
func isKnightJump(from, to Location) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	for _, d := range knightOffsets {
		if d[0] == dr && d[1] == dc {
			return true
		}
	}
	return false
}
