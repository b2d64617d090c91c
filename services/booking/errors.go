package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderNotFound is returned when the target provider does not
	// exist or has no published availability.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrPastDateTime rejects bookings whose date and time are not strictly
	// in the future.
	ErrPastDateTime = errors.New("requested date and time are in the past")

	// ErrSlotConflict is the routine outcome when another active appointment
	// already holds the requested slot. Callers should re-fetch slots and
	// retry with a different time.
	ErrSlotConflict = errors.New("slot already booked")

	// ErrAppointmentNotFound is returned for unknown appointment ids.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrNotPermitted is returned when the caller is neither party to the
	// appointment, or lacks the role the transition requires.
	ErrNotPermitted = errors.New("caller may not modify this appointment")

	// ErrInvalidTransition is returned when the appointment is not in a
	// state the requested transition starts from.
	ErrInvalidTransition = errors.New("appointment status does not allow this transition")
)

// ValidationError carries the field-level reason a booking request was
// rejected before any commit was attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
