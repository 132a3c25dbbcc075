package machine

import (
	"iter"
	"maps"
	"slices"
)

// State is a named mode of the control logic.
type State string

// States is a finite set of states.
type States map[State]struct{}

// NewStates creates a state set from a list of states.
func NewStates(states ...State) (set States) {
	set = make(States, len(states))
	for _, state := range states {
		set[state] = struct{}{}
	}

	return
}

// Contains returns true if state is a member of the set.
func (set States) Contains(state State) bool {
	_, ok := set[state]
	return ok
}

// All returns the states of the set, sorted.
func (set States) All() iter.Seq[State] {
	return slices.Values(slices.Sorted(maps.Keys(set)))
}
