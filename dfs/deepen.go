package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/statespace/space"
)

// frame remembers the shallowest depth at which a state was visited in the
// current pass.
type frame struct {
	state space.State
	depth int
}

// deepener runs one depth-limited pass of Deepen.
type deepener struct {
	opts   DFSOptions
	goal   space.Goal
	limit  int
	best   map[string]frame
	path   []space.Action
	visits int
	found  space.State
}

// Deepen runs iterative-deepening depth-first search: depth-limited passes
// with limits 0, 1, 2, … until a goal state is visited, the reachable
// component is exhausted, or MaxDepth is reached.
//
// Within a pass a state is revisited only when reached by a shorter path,
// so the first goal found lies at the smallest possible depth and the
// returned Policy has the same length a breadth-first search would give.
// The goal predicate is evaluated on every visit, so it may run more than
// once per state.
//
// Returns ErrNilStart or ErrNilGoal for nil inputs. Cancellation and hook
// errors abort with the partial result.
func Deepen(start space.State, goal space.Goal, opts ...Option) (*DeepenResult, error) {
	if start == nil {
		return nil, ErrNilStart
	}
	if goal == nil {
		return nil, ErrNilGoal
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	res := &DeepenResult{}
	startKey := start.Key()
	for limit := 0; ; limit++ {
		d := &deepener{
			opts:  dopts,
			goal:  goal,
			limit: limit,
			best:  make(map[string]frame),
		}
		res.Iterations++
		ok, err := d.search(start, startKey, 0)
		res.Visits += d.visits
		if err != nil {
			return res, err
		}
		if ok {
			res.Found = true
			res.Policy = append(space.Policy{}, d.path...)
			res.Goal = d.found
			return res, nil
		}
		if !d.cutoff() {
			return res, nil
		}
		if dopts.MaxDepth >= 0 && limit >= dopts.MaxDepth {
			res.Truncated = true
			return res, nil
		}
	}
}

// search visits s at depth and recurses while depth < limit. Reports whether
// a goal was found; d.path then holds the actions leading to it.
func (d *deepener) search(s space.State, key string, depth int) (bool, error) {
	select {
	case <-d.opts.Ctx.Done():
		return false, d.opts.Ctx.Err()
	default:
	}

	if prev, ok := d.best[key]; ok && prev.depth <= depth {
		return false, nil
	}
	d.best[key] = frame{state: s, depth: depth}
	d.visits++

	if d.opts.OnVisit != nil {
		if err := d.opts.OnVisit(s, depth); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %q: %w", key, err)
		}
	}
	if d.goal(s) {
		d.found = s
		return true, nil
	}

	if depth < d.limit {
		for _, tr := range d.follow(s) {
			d.path = append(d.path, tr.Action)
			ok, err := d.search(tr.Next, tr.Next.Key(), depth+1)
			if err != nil || ok {
				return ok, err
			}
			d.path = d.path[:len(d.path)-1]
		}
	}

	if d.opts.OnExit != nil {
		if err := d.opts.OnExit(s, depth); err != nil {
			return false, fmt.Errorf("dfs: OnExit hook for %q: %w", key, err)
		}
	}

	return false, nil
}

// follow returns the successors of s that pass the transition filter.
func (d *deepener) follow(s space.State) []space.Transition {
	succ := s.Successors()
	if d.opts.FilterTransition == nil {
		return succ
	}
	return slices.DeleteFunc(succ, func(tr space.Transition) bool {
		return !d.opts.FilterTransition(tr)
	})
}

// cutoff reports whether a state sitting exactly at the limit has a
// successor the pass never reached, i.e. whether a deeper pass could see
// something new.
func (d *deepener) cutoff() bool {
	for _, f := range d.best {
		if f.depth != d.limit {
			continue
		}
		for _, tr := range d.follow(f.state) {
			if _, ok := d.best[tr.Next.Key()]; !ok {
				return true
			}
		}
	}
	return false
}
