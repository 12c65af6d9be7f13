package order

import "fmt"

// Status is an order's lifecycle state. An order moves strictly forward
// through the sequence; the only shortcut is jumping straight to
// completed from any earlier state ("paid and done").
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusServed    Status = "served"
	StatusCompleted Status = "completed"
)

var sequence = []Status{StatusPending, StatusPreparing, StatusReady, StatusServed, StatusCompleted}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

func (s Status) Valid() bool {
	for _, st := range sequence {
		if s == st {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool { return s == StatusCompleted }

// Next returns the following state in the fixed sequence, or false when
// the order is already completed.
func (s Status) Next() (Status, bool) {
	for i, st := range sequence[:len(sequence)-1] {
		if s == st {
			return sequence[i+1], true
		}
	}
	return "", false
}

// CanTransition reports whether moving from s to target is allowed:
// any strictly forward move, including the jump to completed. Nothing
// leaves completed.
func (s Status) CanTransition(target Status) bool {
	if s.Terminal() || !target.Valid() {
		return false
	}
	return s.index() < target.index()
}

func (s Status) index() int {
	for i, st := range sequence {
		if s == st {
			return i
		}
	}
	return -1
}
