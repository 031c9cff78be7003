package models

import "fmt"

// MaxSizeOfAnything is the capacity of a single line buffer, terminator included
const MaxSizeOfAnything = 1000

// Existence is the four-valued scale used for exit status and score
type Existence int

const (
	DefinitelyNothing Existence = iota
	PossiblyNothing
	PossiblySomething
	DefinitelySomething
)

func (e Existence) String() string {
	switch e {
	case DefinitelyNothing:
		return "definitely_nothing"
	case PossiblyNothing:
		return "possibly_nothing"
	case PossiblySomething:
		return "possibly_something"
	case DefinitelySomething:
		return "definitely_something"
	default:
		return fmt.Sprintf("existence(%d)", int(e))
	}
}

// State represents a step of the line combiner
type State string

const (
	StateInit               State = "init"
	StateFirstLineAcquired  State = "first_line_acquired"
	StateSecondLineAcquired State = "second_line_acquired"
	StateCombined           State = "combined"
	StateDone               State = "done"
)

// Next returns the state that follows s, or s itself once done
func (s State) Next() State {
	switch s {
	case StateInit:
		return StateFirstLineAcquired
	case StateFirstLineAcquired:
		return StateSecondLineAcquired
	case StateSecondLineAcquired:
		return StateCombined
	default:
		return StateDone
	}
}
