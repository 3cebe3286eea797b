package domain

// Date format used on the wire and for day-granularity comparisons
const DateFormat = "2006-01-02"

// Booking validation constants
const (
	MinGuestsPerBooking        = 1
	DefaultMaxGuestsPerBooking = 6
	MaxSpecialRequestsLength   = 500
	MaxRequestDetailsLength    = 1000
)

// InactiveStatuses lists statuses that no longer occupy a room.
// Used when counting availability.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCheckedOut,
}

// RevenueStatuses lists statuses whose bookings count towards hotel revenue.
var RevenueStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
}
