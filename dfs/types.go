// Package dfs defines types and options for depth-first traversal of
// implicit state graphs, including cancellation, pre-/post-order hooks,
// depth limiting, transition filtering, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/statespace/space"
)

var (
	// ErrNilStart is returned when Walk or Deepen is given a nil start state.
	ErrNilStart = errors.New("dfs: start state is nil")

	// ErrNilGoal is returned when Deepen is given a nil goal predicate.
	ErrNilGoal = errors.New("dfs: goal is nil")
)

// Option configures optional behavior of Walk and Deepen.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for depth-first traversal.
// It controls hooks, limits, filtering, and diagnostics.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort traversal early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a state (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(s space.State, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a state
	// have been explored (post-order), before appending to Result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(s space.State, depth int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start state. Default is -1 (no limit).
	// For Deepen it caps the largest iteration limit.
	MaxDepth int

	// FilterTransition, if non-nil, is called for each transition before
	// recursing. Return true to follow it, false to skip it.
	FilterTransition func(tr space.Transition) bool

	// SkippedTransitions counts transitions rejected by FilterTransition.
	SkippedTransitions int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No transition filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a state is first discovered.
func WithOnVisit(fn func(s space.State, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a state's descendants have been fully explored.
func WithOnExit(fn func(s space.State, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start state is visited; a negative limit
// removes the bound.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterTransition returns an Option that filters transitions.
// If fn(tr) == false, that transition is skipped and counted in SkippedTransitions.
func WithFilterTransition(fn func(tr space.Transition) bool) Option {
	return func(o *DFSOptions) {
		o.FilterTransition = fn
	}
}

// Result captures the outcome of a depth-first walk.
// It reports post-order, discovery depths and parent links,
// as well as diagnostics like SkippedTransitions.
type Result struct {
	// Order records states in the sequence they finished (post-order).
	Order []space.State

	// Depth maps each state key to its tree depth (#actions) from the start.
	// Depth-first trees are not shortest-path trees.
	Depth map[string]int

	// Parent maps each state key to the key of the state from which it was
	// first discovered. The start state does not appear in this map.
	Parent map[string]string

	// SkippedTransitions reports how many transitions were skipped
	// due to FilterTransition returning false.
	SkippedTransitions int
}

// Visited reports whether s was reached during the walk.
func (r *Result) Visited(s space.State) bool {
	_, ok := r.Depth[s.Key()]
	return ok
}

// DeepenResult holds the outcome of an iterative-deepening search:
//   - Found: a goal state was reached; Policy holds the actions and Goal the state.
//   - Truncated: the search stopped at MaxDepth while deeper states remained.
//   - Iterations: number of depth-limited passes run (limits 0..Iterations-1).
//   - Visits: pre-order visits summed over all passes.
type DeepenResult struct {
	Found      bool
	Policy     space.Policy
	Goal       space.State
	Truncated  bool
	Iterations int
	Visits     int
}
