package travelerservice

import "errors"

var (
	// ErrUserNotFound is returned when the user does not exist
	ErrUserNotFound = errors.New("travelerservice client: user not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("travelerservice client: internal error")

	// ErrInvalidResponse is returned on an unexpected response from the service
	ErrInvalidResponse = errors.New("travelerservice client: invalid response")
)
