package order

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// transitions is the full state machine: pending → preparing → delivered,
// or pending → cancelled. Delivered and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransition reports whether moving from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition validates and returns the next status.
func (s Status) Transition(next Status) (Status, error) {
	if !next.IsValid() {
		return s, fmt.Errorf("unknown order status %q", next)
	}
	if !s.CanTransition(next) {
		return s, fmt.Errorf("cannot move order from %q to %q", s, next)
	}
	return next, nil
}
