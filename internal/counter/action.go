package counter

import "fmt"

// Action is a request to change the counter. The set is closed: Increment
// and Decrement are the only valid values.
type Action int

const (
	// Increment adds one to the counter.
	Increment Action = iota + 1
	// Decrement subtracts one from the counter.
	Decrement
)

// String returns the lower-case action name.
func (a Action) String() string {
	switch a {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}
