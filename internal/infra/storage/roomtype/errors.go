package roomtype

import "errors"

var (
	// ErrRoomTypeNotFound is returned when the room type does not exist
	ErrRoomTypeNotFound = errors.New("roomtype.repository: room type not found")

	// ErrDuplicateName is returned when the hotel already has a room type with this name
	ErrDuplicateName = errors.New("roomtype.repository: room type name already exists for hotel")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("roomtype.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("roomtype.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("roomtype.repository: failed to scan row")
)
