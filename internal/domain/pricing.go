package domain

import (
	"math"
	"time"
)

// Nights returns the number of calendar nights between check-in and
// check-out, as the ceiling of the day difference. The result is not
// meaningful unless checkOut is after checkIn; callers validate the range
// before trusting it (see the create_booking usecase).
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	return int(math.Ceil(diff.Hours() / 24))
}

// TotalPrice returns the total price of a stay: nightly rate times nights.
// Guest count is part of the signature because the booking form carries it,
// but rooms are priced per night regardless of occupancy, so it never enters
// the computation. Missing inputs (nights or rate not positive) mean
// "no total yet" and yield 0 rather than an error.
func TotalPrice(nightlyRate float64, nights int, numGuests int) float64 {
	_ = numGuests

	if nights <= 0 || nightlyRate <= 0 {
		return 0
	}
	return nightlyRate * float64(nights)
}

// DateOnly truncates a timestamp to day granularity in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateInPast reports whether date falls on a day before now's day.
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}
