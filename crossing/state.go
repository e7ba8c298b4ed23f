package crossing

// State is the lifecycle state of a person
type State uint16

const (
	// StateEntering means the person has been first seen above the threshold row
	StateEntering State = iota
	// StateExiting means the person has been first seen on the threshold row or below it
	StateExiting
	// StateEntered is terminal: the person disappeared on the threshold row or below it
	StateEntered
	// StateExited is terminal: the person disappeared above the threshold row
	StateExited
)

func (state State) String() string {
	switch state {
	case StateEntering:
		return "entering"
	case StateExiting:
		return "exiting"
	case StateEntered:
		return "entered"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// IsTerminal returns true for states which can't be left anymore
func (state State) IsTerminal() bool {
	return state == StateEntered || state == StateExited
}
