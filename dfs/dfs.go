// Package dfs implements depth-first traversal of implicit state graphs.
//
// Key features:
//   - Walk(start, opts...): single-source depth-first walk over Successors
//   - Deepen(start, goal, opts...): iterative deepening, fewest actions first
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterTransition, SkippedTransitions diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Walk:   O(V + E) over the reachable component, plus hooks and filters.
//   - Deepen: O(D·(V + E)) for goal depth D.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrNilStart               if start is nil.
//   - ErrNilGoal                if goal is nil (Deepen only).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/statespace/space"
)

// dfsWalker encapsulates state during a walk.
type dfsWalker struct {
	opts DFSOptions // traversal options
	res  *Result    // result collector
}

// Walk performs a depth-first walk from start, following transitions in
// the order Successors returns them. Each reachable state is visited once.
// Returns the Result or an error if aborted by context or hook; on error the
// partial Result is returned alongside it.
func Walk(start space.State, opts ...Option) (*Result, error) {
	// 1. Validate input
	if start == nil {
		return nil, ErrNilStart
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Initialize result
	res := &Result{
		Order:  make([]space.State, 0),
		Depth:  make(map[string]int),
		Parent: make(map[string]string),
	}
	walker := &dfsWalker{opts: dopts, res: res}

	// 4. Traverse
	if err := walker.traverse(start, start.Key(), 0); err != nil {
		return res, err
	}

	// 5. Expose diagnostics
	res.SkippedTransitions = walker.opts.SkippedTransitions

	return res, nil
}

// traverse visits s at the given depth, recursing into its successors.
// It honors context cancellation, depth limit, hooks, and filtering.
func (w *dfsWalker) traverse(s space.State, key string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Depth[key] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(s, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", key, err)
		}
	}

	// 5. Explore each successor
	for _, tr := range s.Successors() {
		if w.opts.FilterTransition != nil && !w.opts.FilterTransition(tr) {
			w.opts.SkippedTransitions++
			continue
		}
		nkey := tr.Next.Key()
		if _, seen := w.res.Depth[nkey]; seen {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nkey] = key
		if err := w.traverse(tr.Next, nkey, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(s, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", key, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, s)

	return nil
}
