package get_availability

import "time"

// Request holds the parameters of an availability query
type Request struct {
	HotelID      int64
	RoomTypeName string
	StartDate    time.Time // first night, inclusive
	EndDate      time.Time // last day, exclusive (check-out day)
}

// DayAvailability is one day of the report
type DayAvailability struct {
	Date           time.Time
	TotalRooms     int
	AvailableRooms int
	PricePerNight  float64
}

// Response is the per-day availability of one room type
type Response struct {
	HotelID      int64
	RoomTypeName string
	Days         []DayAvailability
}
