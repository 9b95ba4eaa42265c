// Package dfs implements depth-first traversal and iterative-deepening
// search over implicit state graphs described by space.State.
//
// What:
//
//   - Walk: explores as far as possible along each branch before
//     backtracking. Every reachable state is visited once. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Transition filtering
//   - Deepen: runs depth-limited passes with growing limits. It returns a
//     policy of the same length breadth-first search would, while its
//     recursion only holds one path at a time.
//
// Why:
//   - Enumerate a reachable component in post-order
//   - Cross-check breadth-first results with an independent algorithm
//   - Bound the search by depth when the frontier would be too wide
//
// Key Types:
//
//   - Option: functional options for Walk and Deepen
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterTransition
//   - Result: post-order, Depth and Parent maps keyed by State.Key
//   - DeepenResult: Found, Policy, Goal, Truncated, Iterations, Visits
//
// Complexity:
//
//   - Walk:   Time O(V+E), Memory O(V)
//   - Deepen: Time O(D·(V+E)) for goal depth D, Memory O(V)
//
// Errors:
//
//   - ErrNilStart       start state is nil
//   - ErrNilGoal        goal predicate is nil
//   - context.Canceled  traversal canceled via context
//   - hook errors       propagated from OnVisit or OnExit
package dfs
