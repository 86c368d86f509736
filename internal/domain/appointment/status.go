package appointment

import "github.com/autogleam/detailing-api/internal/httperr"

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no-show"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func isTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// CanTransition enforces the status graph: scheduled -> in-progress ->
// completed (skipping in-progress allowed), cancelled and no-show reachable
// from any non-terminal state. Re-setting the current status is a no-op.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if isTerminal(from) {
		return httperr.ErrBusiness("invalid_state")
	}
	switch to {
	case StatusCancelled, StatusNoShow, StatusCompleted:
		return nil
	case StatusInProgress:
		if from == StatusScheduled {
			return nil
		}
	case StatusScheduled:
		// no path back to scheduled
	}
	return httperr.ErrBusiness("invalid_state")
}

// IncrementsVisits reports whether a transition bumps the client's visit
// counter: exactly on entering completed from a different state.
func IncrementsVisits(from, to Status) bool {
	return to == StatusCompleted && from != StatusCompleted
}
