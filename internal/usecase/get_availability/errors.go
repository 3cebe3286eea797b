package get_availability

import "errors"

var (
	// ErrMissingField is returned when a required parameter is absent
	ErrMissingField = errors.New("get_availability: missing required field")

	// ErrInvalidDateRange is returned when the end date is not after the start date
	ErrInvalidDateRange = errors.New("get_availability: end date must be after start date")

	// ErrRoomTypeNotFound is returned when the hotel has no such room type
	ErrRoomTypeNotFound = errors.New("get_availability: room type not found")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("get_availability: internal error")
)
