package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for unknown provider ids.
	ErrNotFound = errors.New("provider not found")

	// ErrBadCredentials is returned when login fails; it does not reveal
	// whether the email or the password was wrong.
	ErrBadCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when the registration email is in use.
	ErrEmailTaken = errors.New("email already registered")
)

// AvailabilityError rejects an invalid weekly template at write time, so
// slot generation never has to defend against malformed input.
type AvailabilityError struct {
	Reason string
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("invalid availability: %s", e.Reason)
}
