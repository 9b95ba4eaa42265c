package space

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the space contract.
var (
	// ErrNegativeCost is returned by NewAction for a negative or NaN cost.
	ErrNegativeCost = errors.New("space: action cost must be non-negative")

	// ErrIllegalAction is returned by Replay when an action is not among the
	// successors of the current state.
	ErrIllegalAction = errors.New("space: action not applicable")

	// ErrNilState is returned when a nil State is supplied.
	ErrNilState = errors.New("space: state is nil")
)

// Descriptor identifies the source or target of an Action.
// Implementations must be comparable values.
type Descriptor interface {
	fmt.Stringer
}

// Action is an immutable description of one state transition.
// The zero Action has nil descriptors and zero cost.
type Action struct {
	source Descriptor
	target Descriptor
	cost   float64
}

// NewAction builds an Action. It returns ErrNegativeCost if cost < 0 or NaN.
func NewAction(source, target Descriptor, cost float64) (Action, error) {
	if cost < 0 || math.IsNaN(cost) {
		return Action{}, fmt.Errorf("%w: got %v", ErrNegativeCost, cost)
	}

	return Action{source: source, target: target, cost: cost}, nil
}

// UnitAction builds an Action of cost 1.
func UnitAction(source, target Descriptor) Action {
	return Action{source: source, target: target, cost: 1}
}

// Source returns the descriptor the action moves from.
func (a Action) Source() Descriptor { return a.source }

// Target returns the descriptor the action moves to.
func (a Action) Target() Descriptor { return a.target }

// Cost returns the action cost.
func (a Action) Cost() float64 { return a.cost }

// String renders the action as "source->target".
func (a Action) String() string {
	return describe(a.source) + "->" + describe(a.target)
}

// MarshalJSON encodes the action as {"source":…,"target":…,"cost":…}.
// Descriptors implementing json.Marshaler keep their own encoding.
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Source Descriptor `json:"source"`
		Target Descriptor `json:"target"`
		Cost   float64    `json:"cost"`
	}{a.source, a.target, a.cost})
}

func describe(d Descriptor) string {
	if d == nil {
		return "<nil>"
	}

	return d.String()
}

// State is one configuration of a searched system.
type State interface {
	// Key returns the canonical identity of the state.
	// a.Equal(b) must hold exactly when a.Key() == b.Key().
	Key() string

	// Equal reports whether other represents the same configuration.
	Equal(other State) bool

	// Successors returns every (Action, State) pair reachable in one step.
	// An empty slice means no transition is legal.
	Successors() []Transition
}

// Transition pairs an Action with the State it produces.
type Transition struct {
	Action Action
	Next   State
}

// Goal is a caller-supplied acceptance test over states.
type Goal func(State) bool
