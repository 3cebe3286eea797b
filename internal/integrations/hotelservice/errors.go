package hotelservice

import "errors"

var (
	// ErrHotelNotFound is returned when the hotel does not exist
	ErrHotelNotFound = errors.New("hotelservice client: hotel not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("hotelservice client: internal error")

	// ErrInvalidResponse is returned on an unexpected response from the service
	ErrInvalidResponse = errors.New("hotelservice client: invalid response")
)
