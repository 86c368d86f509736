package appointment

import (
	"testing"

	"github.com/autogleam/detailing-api/internal/httperr"
)

func TestIsValidStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"scheduled", "in-progress", "completed", "cancelled", "no-show"} {
		if !IsValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "done", "SCHEDULED", "in_progress"} {
		if IsValidStatus(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestCanTransition_Allowed(t *testing.T) {
	t.Parallel()

	allowed := [][2]Status{
		{StatusScheduled, StatusInProgress},
		{StatusScheduled, StatusCompleted},
		{StatusScheduled, StatusCancelled},
		{StatusScheduled, StatusNoShow},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
		{StatusInProgress, StatusNoShow},
	}
	for _, pair := range allowed {
		if err := CanTransition(pair[0], pair[1]); err != nil {
			t.Fatalf("%s -> %s should be allowed, got %v", pair[0], pair[1], err)
		}
	}
}

func TestCanTransition_SameStatusIsNoOp(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow} {
		if err := CanTransition(s, s); err != nil {
			t.Fatalf("%s -> %s should be a no-op, got %v", s, s, err)
		}
	}
}

func TestCanTransition_TerminalStatesLocked(t *testing.T) {
	t.Parallel()

	for _, from := range []Status{StatusCompleted, StatusCancelled, StatusNoShow} {
		for _, to := range []Status{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow} {
			if from == to {
				continue
			}
			err := CanTransition(from, to)
			if err == nil {
				t.Fatalf("%s -> %s should be rejected", from, to)
			}
			if !httperr.IsBusiness(err, "invalid_state") {
				t.Fatalf("%s -> %s: expected invalid_state, got %v", from, to, err)
			}
		}
	}
}

func TestCanTransition_NoPathBackToScheduled(t *testing.T) {
	t.Parallel()

	if err := CanTransition(StatusInProgress, StatusScheduled); err == nil {
		t.Fatalf("in-progress -> scheduled should be rejected")
	}
}

func TestIncrementsVisits(t *testing.T) {
	t.Parallel()

	if !IncrementsVisits(StatusScheduled, StatusCompleted) {
		t.Fatalf("scheduled -> completed should increment visits")
	}
	if !IncrementsVisits(StatusInProgress, StatusCompleted) {
		t.Fatalf("in-progress -> completed should increment visits")
	}
	if IncrementsVisits(StatusCompleted, StatusCompleted) {
		t.Fatalf("completed -> completed must not increment visits")
	}
	if IncrementsVisits(StatusScheduled, StatusCancelled) {
		t.Fatalf("cancellation must not increment visits")
	}
}
