package models

import "testing"

func TestTechnicianCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{BookingPending, BookingAccepted},
		{BookingPending, BookingCancelled},
		{BookingAccepted, BookingOnTheWay},
		{BookingAccepted, BookingWorking},
		{BookingAccepted, BookingCompleted},
		{BookingOnTheWay, BookingWorking},
		{BookingOnTheWay, BookingCompleted},
		{BookingWorking, BookingCompleted},
	}
	for _, tr := range allowed {
		if !TechnicianCanTransition(tr.from, tr.to) {
			t.Errorf("%s -> %s should be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to string }{
		{BookingPending, BookingWorking},
		{BookingPending, BookingCompleted},
		{BookingAccepted, BookingPending},
		{BookingWorking, BookingOnTheWay},
		{BookingWorking, BookingCancelled},
		{BookingCompleted, BookingWorking},
		{BookingCompleted, BookingPending},
		{BookingCancelled, BookingAccepted},
	}
	for _, tr := range denied {
		if TechnicianCanTransition(tr.from, tr.to) {
			t.Errorf("%s -> %s should be denied", tr.from, tr.to)
		}
	}
}

func TestTerminalStatesHaveNoTransitions(t *testing.T) {
	for _, terminal := range []string{BookingCompleted, BookingCancelled} {
		for _, target := range BookingStatuses {
			if TechnicianCanTransition(terminal, target) {
				t.Errorf("%s is terminal but allows transition to %s", terminal, target)
			}
		}
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range BookingStatuses {
		if !ValidBookingStatus(s) {
			t.Errorf("%s should be a valid status", s)
		}
	}
	for _, s := range []string{"", "refunded", "PENDING", "onTheWay"} {
		if ValidBookingStatus(s) {
			t.Errorf("%q should not be a valid status", s)
		}
	}
}
