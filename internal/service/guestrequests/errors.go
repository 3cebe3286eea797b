package guestrequests

import "errors"

var (
	// ErrRequestNotFound is returned when the guest request does not exist
	ErrRequestNotFound = errors.New("guest request not found")

	// ErrBookingNotFound is returned when the referenced booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrHotelNotFound is returned when the hotel does not exist
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrAccessDenied is returned when the user may not act on the request
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on invalid request parameters
	ErrInvalidInput = errors.New("invalid guest request input")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("guestrequests service: internal error")
)
