package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/statespace/space"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	state space.State
	key   string
	depth int
}

// step is a predecessor entry: the state a key was discovered from and the
// action taken to reach it.
type step struct {
	prevKey string
	action  space.Action
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	opts      BFSOptions
	ctx       context.Context
	goal      space.Goal // nil when exploring
	startKey  string
	queue     []queueItem
	depth     map[string]int // doubles as the visited set
	pred      map[string]step
	order     []space.State // filled only when exploring
	exploring bool
	full      bool
	truncated bool
	foundKey  string
	found     space.State
	stats     Stats
}

// Search runs breadth-first search from start until a state satisfying goal
// is discovered, applying any number of functional Options.
//
// Returns a Result whose Outcome is:
//   - Found: Policy holds the fewest actions leading to a goal state
//     (an empty, non-nil Policy when start itself satisfies goal);
//   - NoPolicy: the reachable component, within limits, holds no goal state;
//   - Cancelled: the context ended first (the context error is returned too).
//
// Returns ErrNilStart, ErrNilGoal or ErrOptionViolation for invalid input,
// or a wrapped OnVisit hook error.
func Search(start space.State, goal space.Goal, opts ...Option) (*Result, error) {
	if start == nil {
		return nil, ErrNilStart
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := newWalker(start, goal, o)
	o.Logger.Debug("bfs: search started",
		"start", w.startKey, "max_depth", o.MaxDepth, "max_states", o.MaxStates)

	res, err := w.search(start)
	if res != nil {
		o.Logger.Debug("bfs: search finished",
			"outcome", res.Outcome.String(),
			"policy_len", res.Policy.Len(),
			"discovered", res.Stats.Discovered,
			"expanded", res.Stats.Expanded,
			"truncated", res.Truncated)
	}

	return res, err
}

// Explore walks every state reachable from start, within the configured
// limits, and returns their visit order, depths and parent links.
// Returns ErrNilStart or ErrOptionViolation for invalid input, the context
// error on cancellation, or a wrapped OnVisit hook error.
func Explore(start space.State, opts ...Option) (*Exploration, error) {
	if start == nil {
		return nil, ErrNilStart
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := newWalker(start, nil, o)
	w.exploring = true
	w.enqueue(start, w.startKey, 0)
	err = w.loop()
	o.Logger.Debug("bfs: exploration finished",
		"start", w.startKey, "discovered", w.stats.Discovered, "expanded", w.stats.Expanded)

	return &Exploration{
		Order:     w.order,
		Depth:     w.depth,
		Truncated: w.truncated,
		Stats:     w.stats,
		startKey:  w.startKey,
		pred:      w.pred,
	}, err
}

// buildOptions applies opts over DefaultOptions and surfaces any recorded error.
func buildOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker(start space.State, goal space.Goal, o BFSOptions) *walker {
	return &walker{
		opts:     o,
		ctx:      o.Ctx,
		goal:     goal,
		startKey: start.Key(),
		queue:    make([]queueItem, 0, 64),
		depth:    make(map[string]int),
		pred:     make(map[string]step),
	}
}

// search handles the start-is-goal case, then drives the main loop.
func (w *walker) search(start space.State) (*Result, error) {
	if w.goal(start) {
		w.stats.Discovered = 1
		return &Result{Outcome: Found, Policy: space.Policy{}, Goal: start, Stats: w.stats}, nil
	}

	w.enqueue(start, w.startKey, 0)
	if err := w.loop(); err != nil {
		if w.ctx.Err() != nil {
			return &Result{Outcome: Cancelled, Truncated: w.truncated, Stats: w.stats}, err
		}
		return nil, err
	}
	if w.found == nil {
		return &Result{Outcome: NoPolicy, Truncated: w.truncated, Stats: w.stats}, nil
	}

	return &Result{
		Outcome: Found,
		Policy:  policyTo(w.pred, w.startKey, w.foundKey),
		Goal:    w.found,
		Stats:   w.stats,
	}, nil
}

// enqueue marks key visited at depth d, calls OnEnqueue, and adds the state
// to the queue.
func (w *walker) enqueue(s space.State, key string, d int) {
	w.record(key, d)
	w.opts.OnEnqueue(s, d)
	w.queue = append(w.queue, queueItem{state: s, key: key, depth: d})
	if len(w.queue) > w.stats.MaxFrontier {
		w.stats.MaxFrontier = len(w.queue)
	}
}

// record adds key to the visited set and updates the counters.
func (w *walker) record(key string, d int) {
	w.depth[key] = d
	w.stats.Discovered++
	if d > w.stats.Depth {
		w.stats.Depth = d
	}
	if w.opts.MaxStates > 0 && len(w.depth) >= w.opts.MaxStates {
		w.full = true
	}
}

// loop processes the queue until empty, goal found, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.expand(item) {
			return nil
		}
		if w.full {
			// nothing new can be recorded, so nothing new can be found
			w.truncated = true
			return nil
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue[0] = queueItem{}
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.state, item.depth)
	return item
}

// visit records the state in Order (when exploring) and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	if w.exploring {
		w.order = append(w.order, item.state)
	}
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
	}
	return nil
}

// expand generates the successors of item and records every unseen one.
// The goal is tested once per newly discovered state. Reports whether a
// goal state was discovered.
func (w *walker) expand(item queueItem) bool {
	if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
		w.truncated = true
		return false
	}
	w.stats.Expanded++
	nextDepth := item.depth + 1

	for _, tr := range item.state.Successors() {
		key := tr.Next.Key()
		if _, seen := w.depth[key]; seen {
			continue
		}
		if w.full {
			w.truncated = true
			return false
		}
		w.pred[key] = step{prevKey: item.key, action: tr.Action}
		if w.goal != nil && w.goal(tr.Next) {
			w.record(key, nextDepth)
			w.foundKey, w.found = key, tr.Next
			w.stats.Depth = nextDepth
			return true
		}
		w.enqueue(tr.Next, key, nextDepth)
	}
	return false
}

// policyTo walks predecessor entries back from key to startKey and returns
// the actions in start→key order.
func policyTo(pred map[string]step, startKey, key string) space.Policy {
	policy := space.Policy{}
	for key != startKey {
		st := pred[key]
		policy = append(policy, st.action)
		key = st.prevKey
	}
	slices.Reverse(policy)

	return policy
}
