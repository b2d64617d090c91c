package schedule

import "errors"

var (
	// ErrProviderNotFound covers both an unknown provider id and a provider
	// that has not published an availability template yet.
	ErrProviderNotFound = errors.New("provider not found or has no availability")

	// ErrInvalidDate is returned for a missing or malformed date parameter.
	ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")
)
