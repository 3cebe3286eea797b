package roomtypes

import "errors"

var (
	// ErrRoomTypeNotFound is returned when the room type does not exist
	ErrRoomTypeNotFound = errors.New("room type not found")

	// ErrHotelNotFound is returned when the hotel does not exist
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrAccessDenied is returned when the user does not own the hotel
	ErrAccessDenied = errors.New("access denied")

	// ErrDuplicateName is returned when the hotel already has a room type with this name
	ErrDuplicateName = errors.New("room type name already exists for hotel")

	// ErrInvalidInput is returned on invalid room type parameters
	ErrInvalidInput = errors.New("invalid room type input")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("roomtypes service: internal error")
)
