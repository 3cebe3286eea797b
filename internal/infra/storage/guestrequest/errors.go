package guestrequest

import "errors"

var (
	// ErrRequestNotFound is returned when the guest request does not exist
	ErrRequestNotFound = errors.New("guestrequest.repository: request not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("guestrequest.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("guestrequest.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("guestrequest.repository: failed to scan row")
)
