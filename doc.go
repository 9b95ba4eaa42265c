// Package statespace finds shortest action sequences through implicit state
// graphs: graphs whose vertices are never stored up front but produced on
// demand by asking a state for its successors.
//
// 🚀 What is statespace?
//
//	A small, dependency-light toolkit that brings together:
//		• Contract: a State knows its Key, its Equal and its Successors
//		• Actions: immutable source/target/cost values, compared by value
//		• Search: breadth-first, fewest actions first, goal tested on discovery
//		• Explore: full layer-by-layer traversal of a reachable component
//		• Deepen: iterative deepening, same policy length with a shallow frontier
//		• Knights: an 8×8 board of identical pieces moving by knight jumps
//		• Puzzles: YAML problem files and bundled formation-shift classics
//		• Observe: Prometheus counters and OpenTelemetry spans around a search
//
// ✨ Why choose statespace?
//
//   - Bring your own states – implement three methods, get shortest policies
//   - Deterministic – equal inputs give the same policy every run
//   - Cancellable – context checked once per expansion, limits on depth & size
//   - Extensible – OnEnqueue, OnDequeue and OnVisit hooks for custom logic
//
// Packages:
//
//	space/           Action, State, Transition, Goal, Policy and Replay
//	bfs/             Search and Explore with functional options
//	dfs/             depth-first Walk and iterative-deepening Deepen
//	knights/         bitboard State with knight-jump successors
//	puzzle/          YAML puzzles and the bundled classics
//	observe/         metrics and tracing wrappers
//	cmd/knightsmove  command line driver
//
// Quick ASCII example (one jump, (4,4)->(3,6)):
//
//	........      ........
//	........      ........
//	........      ........
//	........  ─►  ......K.
//	....K...      ........
//
//	go install github.com/katalvlaran/statespace/cmd/knightsmove@latest
package statespace
