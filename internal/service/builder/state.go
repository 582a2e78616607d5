package builder

import "fmt"

// State is the pipeline controller state. Transitions are strictly linear:
// a stage failure jumps to the post-clean pass and then to StateFailed,
// everything else advances one step at a time.
type State string

const (
	StateInit        State = "INIT"
	StateProbed      State = "PROBED"
	StateToolChecked State = "TOOL_CHECKED"
	StateResolved    State = "RESOLVED"
	StatePreCleaned  State = "PRE_CLEANED"
	StatePackaged    State = "PACKAGED"
	StateStaged      State = "STAGED"
	StatePostCleaned State = "POST_CLEANED"
	StateSucceeded   State = "SUCCEEDED"
	StateFailed      State = "FAILED"
)

// IsTerminal reports whether the state is terminal (finished).
func IsTerminal(s State) bool {
	return s == StateSucceeded || s == StateFailed
}

// isAllowedTransition encodes the pipeline order. The post-clean pass is
// reachable from every non-terminal state: cleanup is unconditional on the
// way to both terminal states.
func isAllowedTransition(from, to State) bool {
	if IsTerminal(from) {
		return false
	}

	if to == StatePostCleaned {
		return from != StatePostCleaned
	}

	switch from {
	case StateInit:
		return to == StateProbed
	case StateProbed:
		return to == StateToolChecked
	case StateToolChecked:
		return to == StateResolved
	case StateResolved:
		return to == StatePreCleaned
	case StatePreCleaned:
		return to == StatePackaged
	case StatePackaged:
		return to == StateStaged
	case StateStaged:
		return false // Only the post-clean pass follows staging.
	case StatePostCleaned:
		return to == StateSucceeded || to == StateFailed
	default:
		return false
	}
}

// advance performs a validated transition. A disallowed transition is a
// controller bug, not an operational failure.
func (b *builder) advance(to State) error {
	if !isAllowedTransition(b.state, to) {
		return fmt.Errorf("disallowed transition: %s -> %s", b.state, to)
	}

	b.state = to

	return nil
}
