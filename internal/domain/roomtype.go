package domain

import "time"

// RoomType represents a hotel's bookable room category with a nightly rate
type RoomType struct {
	ID                int64
	HotelID           int64
	Name              string
	Description       *string
	BasePricePerNight float64
	MaxGuests         int
	TotalRooms        int // 0 = inventory not tracked, availability checks are skipped
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// GuestLimit returns the maximum guests allowed for this room type,
// falling back to the service-wide default when the column is unset.
func (rt *RoomType) GuestLimit(fallback int) int {
	if rt.MaxGuests > 0 {
		return rt.MaxGuests
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultMaxGuestsPerBooking
}

// TracksInventory reports whether availability checks apply to this room type.
func (rt *RoomType) TracksInventory() bool {
	return rt.TotalRooms > 0
}

// DayAvailability is one day of the availability report for a room type.
type DayAvailability struct {
	Date           time.Time
	TotalRooms     int
	AvailableRooms int
	PricePerNight  float64
}
