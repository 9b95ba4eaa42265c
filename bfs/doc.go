// Package bfs provides breadth-first search over an implicit state graph
// described by space.State, returning the fewest-action policy from a start
// state to a state accepted by a goal predicate.
//
// What
//
//   - Search(start, goal, opts...) explores states level by level and stops at
//     the first discovered goal state. It returns a Result containing:
//   - Outcome: Found, NoPolicy or Cancelled
//   - Policy: the ordered actions start→goal (empty if start is a goal, nil otherwise)
//   - Goal: the goal state reached
//   - Stats: discovered / expanded counts, largest frontier, depth
//   - Explore(start, opts...) walks the whole reachable component and returns
//     an Exploration with visit Order, Depth per state key, PathTo and Layers.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a state is recorded and queued)
//   - OnDequeue (immediately before expansion)
//   - OnVisit   (when expanding; may abort with an error)
//   - Honors MaxDepth and MaxStates limits (0 means no limit).
//
// Why
//
//	States are produced on demand by State.Successors, so the graph never has
//	to be materialized. A visited set keyed by State.Key prevents re-expansion
//	and loops; a predecessor map rebuilds the policy once a goal is found.
//
// Goal testing
//
//	The goal is evaluated exactly once per state, at discovery time, not when
//	the state is dequeued. The search therefore returns as soon as a goal is
//	discovered. Among several shortest policies, the one returned is the first
//	discovered in successor-enumeration order.
//
// No policy is not an error
//
//	Exhausting the reachable component without a goal yields Outcome NoPolicy
//	with a nil Policy and a nil error. Errors are reserved for invalid input,
//	hook failures and cancellation.
//
// Complexity (V = reachable states, E = transitions among them)
//
//   - Time:   O(V + E) successor generations and key computations
//   - Memory: O(V)     (queue, visited set, predecessor map)
//
// Usage
//
//	res, err := bfs.Search(start, space.EqualTo(target))
//	if err != nil {
//		// ErrNilStart, ErrNilGoal, ErrOptionViolation, hook errors, or ctx.Err()
//	}
//	switch res.Outcome {
//	case bfs.Found:
//		fmt.Println(res.Policy)
//	case bfs.NoPolicy:
//		fmt.Println("no policy")
//	}
//
//	// With functional options:
//	res, err := bfs.Search(
//	    start, goal,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(12),
//	    bfs.WithMaxStates(1_000_000),
//	    bfs.WithLogger(logger),
//	    bfs.WithOnVisit(func(s space.State, depth int) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrNilStart         if the start state is nil.
//   - ErrNilGoal          if the goal predicate is nil.
//   - ErrOptionViolation  if an Option is invalid (negative MaxDepth or MaxStates).
//   - ErrUnreachable      from Exploration.PathTo for a state never reached.
//   - context errors      on cancellation (with Outcome Cancelled).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
