package models

import (
	"testing"

	"jatomogu/constants"
)

func TestPendingTransitions(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusPending}
	state := GetBookingState(b.Status)

	if err := state.Complete(b); err == nil {
		t.Fatalf("PENDING -> COMPLETED must be rejected")
	}
	if err := state.NoShow(b); err == nil {
		t.Fatalf("PENDING -> NO_SHOW must be rejected")
	}
	if b.Status != constants.BookingStatusPending {
		t.Fatalf("rejected transition mutated status to %q", b.Status)
	}

	if err := state.Confirm(b); err != nil {
		t.Fatalf("PENDING -> CONFIRMED failed: %v", err)
	}
	if b.Status != constants.BookingStatusConfirmed {
		t.Fatalf("status = %q, want CONFIRMED", b.Status)
	}
}

func TestPendingCancel(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusPending}
	if err := GetBookingState(b.Status).Cancel(b); err != nil {
		t.Fatalf("PENDING -> CANCELLED failed: %v", err)
	}
	if b.Status != constants.BookingStatusCancelled {
		t.Fatalf("status = %q, want CANCELLED", b.Status)
	}
}

func TestConfirmedTransitions(t *testing.T) {
	for _, target := range []struct {
		name string
		run  func(s BookingState, b *Booking) error
		want constants.BookingStatus
	}{
		{"complete", func(s BookingState, b *Booking) error { return s.Complete(b) }, constants.BookingStatusCompleted},
		{"cancel", func(s BookingState, b *Booking) error { return s.Cancel(b) }, constants.BookingStatusCancelled},
		{"noshow", func(s BookingState, b *Booking) error { return s.NoShow(b) }, constants.BookingStatusNoShow},
	} {
		b := &Booking{Status: constants.BookingStatusConfirmed}
		if err := target.run(GetBookingState(b.Status), b); err != nil {
			t.Fatalf("CONFIRMED %s failed: %v", target.name, err)
		}
		if b.Status != target.want {
			t.Fatalf("CONFIRMED %s: status = %q, want %q", target.name, b.Status, target.want)
		}
	}
}

func TestTerminalStatesAbsorb(t *testing.T) {
	terminals := []constants.BookingStatus{
		constants.BookingStatusCancelled,
		constants.BookingStatusCompleted,
		constants.BookingStatusNoShow,
	}
	for _, status := range terminals {
		b := &Booking{Status: status}
		state := GetBookingState(status)

		if err := state.Confirm(b); err == nil {
			t.Fatalf("%q must reject Confirm", status)
		}
		if b.Status != status {
			t.Fatalf("terminal status %q changed to %q", status, b.Status)
		}
	}
}

func TestTerminalResubmissionIsNoOp(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusCancelled}
	if err := GetBookingState(b.Status).Cancel(b); err != nil {
		t.Fatalf("re-cancelling a cancelled booking should be a no-op, got %v", err)
	}

	b = &Booking{Status: constants.BookingStatusCompleted}
	if err := GetBookingState(b.Status).Complete(b); err != nil {
		t.Fatalf("re-completing a completed booking should be a no-op, got %v", err)
	}

	b = &Booking{Status: constants.BookingStatusNoShow}
	if err := GetBookingState(b.Status).NoShow(b); err != nil {
		t.Fatalf("re-marking a no-show booking should be a no-op, got %v", err)
	}
}
