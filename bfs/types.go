// Package bfs provides tunable options, outcomes and error definitions
// for breadth-first search over a space.State graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/statespace/space"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilStart is returned if a nil start state is passed.
	ErrNilStart = errors.New("bfs: start state is nil")

	// ErrNilGoal is returned if a nil goal predicate is passed.
	ErrNilGoal = errors.New("bfs: goal predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by Exploration.PathTo for a state that was not reached.
	ErrUnreachable = errors.New("bfs: state not reached")
)

// Outcome classifies how a search ended.
type Outcome int

const (
	// NoPolicy means the reachable component (within limits) holds no goal state.
	NoPolicy Outcome = iota
	// Found means a goal state was discovered and Result.Policy leads to it.
	Found
	// Cancelled means the context was done before the search completed.
	Cancelled
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NoPolicy:
		return "no_policy"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search or Explore is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines. It is checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a state is enqueued, before it is expanded.
	// Receives the state and its depth from the start.
	OnEnqueue func(s space.State, depth int)

	// OnDequeue is called immediately before expanding a state.
	OnDequeue func(s space.State, depth int)

	// OnVisit is called when expanding a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s space.State, depth int) error

	// MaxDepth, if > 0, stops expanding states at this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, bounds the number of distinct states recorded.
	// A value of 0 explicitly disables the bound.
	MaxStates int

	// Logger receives debug records at search start and finish.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth or state limit
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - a logger that discards everything.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(space.State, int) {},
		OnDequeue: func(space.State, int) {},
		OnVisit:   func(space.State, int) error { return nil },
		MaxDepth:  0,
		MaxStates: 0,
		Logger:    slog.New(slog.DiscardHandler),
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(s space.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(s space.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(s space.State, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the length of any returned policy.
//
//	d > 0: states at depth d are goal-tested but never expanded
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithMaxStates bounds the number of distinct states the search records,
// the start state included.
//
//	n > 0: stop recording new states once n are known
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *BFSOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxStates = n
		}
	}
}

// WithLogger sets the logger for debug records. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *BFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats counts the work done by one search.
type Stats struct {
	// Discovered is the number of distinct states recorded, start included.
	Discovered int `json:"discovered"`
	// Expanded is the number of states whose successors were generated.
	Expanded int `json:"expanded"`
	// MaxFrontier is the largest frontier length observed.
	MaxFrontier int `json:"max_frontier"`
	// Depth is the depth of the goal when found, otherwise the deepest
	// layer recorded.
	Depth int `json:"depth"`
}

// Result holds the outcome of a search:
//   - Outcome: Found, NoPolicy or Cancelled.
//   - Policy: start→goal actions when Found (empty if the start is a goal), nil otherwise.
//   - Goal: the goal state reached when Found.
//   - Truncated: a depth or state limit pruned the search.
type Result struct {
	Outcome   Outcome
	Policy    space.Policy
	Goal      space.State
	Truncated bool
	Stats     Stats
}

// Solved reports whether a policy was found.
func (r *Result) Solved() bool {
	return r != nil && r.Outcome == Found
}
