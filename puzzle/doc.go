// Package puzzle loads knights puzzles from YAML and bundles the classic
// formation-shift puzzles.
//
// A puzzle file names a start board, a goal and optional search limits:
//
//	name: corner-to-corner
//	description: Walk one knight across the board.
//	start: [[0, 0]]
//	goal:
//	  occupies: [[7, 7]]    # or board: [[r, c], ...] for an exact target
//	limits:
//	  max_depth: 10
//	  max_states: 100000
//	  timeout: 30s
//
// Exactly one of goal.board and goal.occupies must be given. Coordinates are
// validated with the knights constructors, so malformed pairs and off-board
// squares surface as ErrInvalid wrapping knights.ErrFormat or knights.ErrRange.
package puzzle
