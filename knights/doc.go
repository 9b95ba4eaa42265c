// Package knights models an 8×8 board occupied by indistinguishable knight
// pieces as a space.State, so that package bfs can search for move sequences.
//
// Each board configuration is a State; an action moves one piece by a chess
// knight jump (two squares along one axis, one along the other) to an empty,
// in-bounds square. Pieces carry no identity: a State is exactly the set of
// occupied Locations.
//
// Representation
//
//	A State is a 64-bit occupancy bitboard, bit r*8+c standing for Location
//	{Row: r, Col: c}. The bitboard is canonical, so Key and Equal never depend
//	on the order locations were supplied in. States are comparable values and
//	are never mutated: every successor is a new value.
//
// Construction
//
//   - New(locs...)        validates ranges (ErrRange)
//   - FromPairs([][]int)  also validates shape (ErrFormat)
//   - Parse(board)        reads the 8-line K/. rendering produced by String
//
// Duplicate locations collapse silently.
//
// Rendering
//
//	String returns eight rows of 'K' (occupied) and '.' (empty), row 0 first.
//	Rendering plays no part in Key or Equal.
package knights
