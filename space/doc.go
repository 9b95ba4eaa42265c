// Package space defines the contract between a search engine and the state
// graph it explores.
//
// What
//
//   - State: a configuration of the searched system. A State exposes a
//     canonical Key (equal states ⇔ equal keys), an Equal test, and the list
//     of Transitions reachable in one step.
//   - Action: an immutable (source, target, cost) value describing one step.
//   - Transition: an Action paired with the State it produces.
//   - Goal: a caller-supplied predicate over States.
//   - Policy: an ordered sequence of Actions leading from a start State to a
//     goal State.
//
// Why
//
//	The graph is implicit: vertices are never stored up front, they are
//	produced on demand by State.Successors. Any type that satisfies State can
//	be searched by package bfs without the engine knowing its representation.
//
// Contract
//
//   - Key must be derived only from equality-relevant fields and must not
//     depend on insertion order or rendering.
//   - Successors must terminate, must not mutate the receiver, and must return
//     an empty slice when no transition is legal.
//   - Descriptors carried by an Action must be comparable values, so that two
//     Actions compare equal with == exactly when source, target and cost match.
//
// Replay
//
//	Replay re-applies a Policy to a start State by matching each Action against
//	the successors of the current State. It lets a caller verify a Policy
//	without trusting the engine that produced it.
package space
