package space

import (
	"fmt"
	"strings"
)

// Policy is an ordered sequence of actions, first to last.
// A nil Policy and an empty Policy are different things to package bfs:
// empty means "already at the goal", nil means "no policy".
type Policy []Action

// Len returns the number of actions.
func (p Policy) Len() int { return len(p) }

// Cost returns the sum of action costs.
func (p Policy) Cost() float64 {
	var total float64
	for _, a := range p {
		total += a.cost
	}

	return total
}

// String renders the actions comma-separated.
func (p Policy) String() string {
	parts := make([]string, len(p))
	for i, a := range p {
		parts[i] = a.String()
	}

	return strings.Join(parts, ", ")
}

// Replay applies p to start and returns the resulting state.
// Each action must equal the Action of exactly one successor of the current
// state; the first match is taken. Returns ErrNilState for a nil start and
// ErrIllegalAction (with the step index) when an action does not apply.
func Replay(start State, p Policy) (State, error) {
	if start == nil {
		return nil, ErrNilState
	}
	cur := start
	for i, a := range p {
		next, ok := successorFor(cur, a)
		if !ok {
			return cur, fmt.Errorf("%w: step %d (%s)", ErrIllegalAction, i, a)
		}
		cur = next
	}

	return cur, nil
}

func successorFor(s State, a Action) (State, bool) {
	for _, tr := range s.Successors() {
		if tr.Action == a {
			return tr.Next, true
		}
	}

	return nil, false
}
