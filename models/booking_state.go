package models

import (
	"errors"

	"jatomogu/constants"
)

// BookingState defines the operations available on a booking in a given
// status. Illegal transitions return an error and leave the booking
// untouched; re-submitting the status a booking already holds is a no-op.
type BookingState interface {
	Confirm(b *Booking) error
	Cancel(b *Booking) error
	Complete(b *Booking) error
	NoShow(b *Booking) error
}

// PendingState: awaiting confirmation, expiry window running
type PendingState struct{}

func (s *PendingState) Confirm(b *Booking) error {
	b.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(b *Booking) error {
	return errors.New("cannot complete a pending booking")
}

func (s *PendingState) NoShow(b *Booking) error {
	return errors.New("cannot mark a pending booking as no-show")
}

// ConfirmedState: reservation held, stay not yet finished
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(b *Booking) error {
	// already confirmed, nothing to do
	return nil
}

func (s *ConfirmedState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(b *Booking) error {
	b.Status = constants.BookingStatusCompleted
	return nil
}

func (s *ConfirmedState) NoShow(b *Booking) error {
	b.Status = constants.BookingStatusNoShow
	return nil
}

// CancelledState is terminal
type CancelledState struct{}

func (s *CancelledState) Confirm(b *Booking) error {
	return errors.New("cannot confirm a cancelled booking")
}

func (s *CancelledState) Cancel(b *Booking) error {
	return nil
}

func (s *CancelledState) Complete(b *Booking) error {
	return errors.New("cannot complete a cancelled booking")
}

func (s *CancelledState) NoShow(b *Booking) error {
	return errors.New("cannot mark a cancelled booking as no-show")
}

// CompletedState is terminal
type CompletedState struct{}

func (s *CompletedState) Confirm(b *Booking) error {
	return errors.New("cannot confirm a completed booking")
}

func (s *CompletedState) Cancel(b *Booking) error {
	return errors.New("cannot cancel a completed booking")
}

func (s *CompletedState) Complete(b *Booking) error {
	return nil
}

func (s *CompletedState) NoShow(b *Booking) error {
	return errors.New("cannot mark a completed booking as no-show")
}

// NoShowState is terminal
type NoShowState struct{}

func (s *NoShowState) Confirm(b *Booking) error {
	return errors.New("cannot confirm a no-show booking")
}

func (s *NoShowState) Cancel(b *Booking) error {
	return errors.New("cannot cancel a no-show booking")
}

func (s *NoShowState) Complete(b *Booking) error {
	return errors.New("cannot complete a no-show booking")
}

func (s *NoShowState) NoShow(b *Booking) error {
	return nil
}

// GetBookingState returns the state handler for a booking status
func GetBookingState(status constants.BookingStatus) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	case constants.BookingStatusNoShow:
		return &NoShowState{}
	default:
		return &PendingState{}
	}
}
