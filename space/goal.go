package space

// EqualTo returns a Goal accepting exactly the states equal to target.
func EqualTo(target State) Goal {
	return func(s State) bool {
		return s != nil && target.Equal(s)
	}
}

// Any returns a Goal accepting a state if at least one goal accepts it.
// Any() with no goals accepts nothing.
func Any(goals ...Goal) Goal {
	return func(s State) bool {
		for _, g := range goals {
			if g(s) {
				return true
			}
		}
		return false
	}
}

// All returns a Goal accepting a state if every goal accepts it.
// All() with no goals accepts everything.
func All(goals ...Goal) Goal {
	return func(s State) bool {
		for _, g := range goals {
			if !g(s) {
				return false
			}
		}
		return true
	}
}
