package create_booking

import "errors"

var (
	// ErrMissingField is returned when a required field is absent
	ErrMissingField = errors.New("create_booking: missing required field")

	// ErrInvalidDateRange is returned when check-out is not after check-in
	ErrInvalidDateRange = errors.New("create_booking: check-out date must be after check-in date")

	// ErrPastDate is returned when the check-in date is in the past
	ErrPastDate = errors.New("create_booking: check-in date cannot be in the past")

	// ErrInvalidGuestCount is returned when the guest count is out of range
	ErrInvalidGuestCount = errors.New("create_booking: invalid number of guests")

	// ErrSpecialRequestsTooLong is returned when the special requests text exceeds the limit
	ErrSpecialRequestsTooLong = errors.New("create_booking: special requests text is too long")

	// ErrHotelNotFound is returned when the hotel does not exist
	ErrHotelNotFound = errors.New("create_booking: hotel not found")

	// ErrRoomTypeNotFound is returned when the hotel has no such room type
	ErrRoomTypeNotFound = errors.New("create_booking: room type not found")

	// ErrRoomTypeInactive is returned when the room type is no longer offered
	ErrRoomTypeInactive = errors.New("create_booking: room type is not active")

	// ErrNoRoomsAvailable is returned when every room of the type is taken on some night of the stay
	ErrNoRoomsAvailable = errors.New("create_booking: no rooms available for the selected dates")

	// ErrTravelerRoleRequired is returned when the requesting user is not a traveler
	ErrTravelerRoleRequired = errors.New("create_booking: only travelers can create bookings")

	// ErrUserNotFound is returned when the requesting user does not exist
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_booking: internal error")
)
