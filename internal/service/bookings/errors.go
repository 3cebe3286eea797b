package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrHotelNotFound is returned when the hotel does not exist
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrAccessDenied is returned when the user may not act on the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrIllegalTransition is returned when the requested status is not a
	// legal lifecycle transition from the booking's current status
	ErrIllegalTransition = errors.New("illegal booking status transition")

	// ErrCannotCancel is returned when the booking is past the point of cancellation
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus is returned when the requested status is not a known one
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("bookings service: internal error")
)
