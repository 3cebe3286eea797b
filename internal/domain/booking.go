package domain

import "time"

// BookingStatus represents the lifecycle status of a hotel booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// legalTransitions is the single source of truth for the booking lifecycle.
// Bookings enter the system as pending; hotel staff confirm or reject them,
// then drive the stay through check-in and check-out. A confirmed booking may
// be checked out directly (no-show or early departure handling).
// checked_out and cancelled are terminal.
var legalTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCheckedOut, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle transition.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leads out of s.
func (s BookingStatus) IsTerminal() bool {
	return s.Valid() && len(legalTransitions[s]) == 0
}

// Booking represents a reservation of a room type for a date range,
// owned by a traveler against a hotel
type Booking struct {
	ID           int64
	HotelID      int64
	TravelerID   int64
	RoomTypeName string
	CheckInDate  time.Time
	CheckOutDate time.Time
	NumGuests    int
	TotalPrice   float64
	Status       BookingStatus

	SpecialRequests  *string
	ConfirmationCode string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies a room
// (not cancelled and not checked out).
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusCheckedOut
}

// CanBeCancelled returns true if the booking may still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Nights returns the number of nights of the stay.
func (b *Booking) Nights() int {
	return Nights(b.CheckInDate, b.CheckOutDate)
}

// OccupiesNight reports whether the booking occupies a room on the night
// starting at the given date. The check-out day itself is free.
func (b *Booking) OccupiesNight(night time.Time) bool {
	return !night.Before(DateOnly(b.CheckInDate)) && night.Before(DateOnly(b.CheckOutDate))
}

// HotelBookingsFilter is the filter for listing a hotel's bookings
type HotelBookingsFilter struct {
	HotelID         int64
	RoomTypeName    *string        // nil = all room types
	StartDate       *time.Time     // period start, compared against check_out_date
	EndDate         *time.Time     // period end, compared against check_in_date
	Status          *BookingStatus // optional status filter
	IncludeInactive bool           // include cancelled and checked-out bookings
}

// BookingStatistics is the owner-dashboard aggregate for one hotel.
type BookingStatistics struct {
	TotalBookings     int64
	ConfirmedBookings int64
	PendingBookings   int64
	TotalRevenue      float64
	OccupancyRate     float64 // confirmed bookings as a percentage of all bookings
}
