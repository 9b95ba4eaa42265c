package bfs

import (
	"fmt"

	"github.com/katalvlaran/statespace/space"
)

// Exploration holds the outcome of an Explore traversal:
//   - Order: states expanded, in visit sequence.
//   - Depth: map from state key to its distance (in actions) from the start.
//   - Truncated: a depth or state limit pruned the traversal.
type Exploration struct {
	Order     []space.State
	Depth     map[string]int
	Truncated bool
	Stats     Stats

	startKey string
	pred     map[string]step
}

// Reached reports whether s was recorded during the traversal.
func (e *Exploration) Reached(s space.State) bool {
	if s == nil {
		return false
	}
	_, ok := e.Depth[s.Key()]

	return ok
}

// PathTo reconstructs the shortest policy from the start state to target.
// Returns ErrUnreachable if target was not reached.
func (e *Exploration) PathTo(target space.State) (space.Policy, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil target", ErrUnreachable)
	}
	key := target.Key()
	if _, ok := e.Depth[key]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, key)
	}

	return policyTo(e.pred, e.startKey, key), nil
}

// Layers groups the visited states by depth: Layers()[d] holds, in visit
// order, every expanded state at distance d from the start.
func (e *Exploration) Layers() [][]space.State {
	var layers [][]space.State
	for _, s := range e.Order {
		d := e.Depth[s.Key()]
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], s)
	}

	return layers
}
