package create_booking

import "time"

// Request holds the parameters for creating a booking
type Request struct {
	TravelerID      int64     // requesting user, must hold the traveler role
	HotelID         int64     // hotel being booked
	RoomTypeName    string    // room type within the hotel
	CheckInDate     time.Time // day granularity
	CheckOutDate    time.Time // day granularity, exclusive
	NumGuests       int
	SpecialRequests *string // optional free text
}

// Response is the created booking
type Response struct {
	ID               int64
	HotelID          int64
	TravelerID       int64
	RoomTypeName     string
	CheckInDate      time.Time
	CheckOutDate     time.Time
	NumGuests        int
	Nights           int
	TotalPrice       float64
	Status           string
	SpecialRequests  *string
	ConfirmationCode string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
