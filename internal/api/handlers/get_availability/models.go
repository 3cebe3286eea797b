package get_availability

import (
	"github.com/travelhub/hotel-booking-service/internal/domain"
	getAvailability "github.com/travelhub/hotel-booking-service/internal/usecase/get_availability"
)

// DayAvailability HTTP model of one day in the report
type DayAvailability struct {
	Date           string  `json:"date"`
	TotalRooms     int     `json:"total_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	PricePerNight  float64 `json:"price_per_night"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	HotelID      int64             `json:"hotel_id"`
	RoomTypeName string            `json:"room_type"`
	Days         []DayAvailability `json:"days"`
}

// FromUseCaseResponse converts the usecase response to the HTTP model.
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayAvailability, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DayAvailability{
			Date:           d.Date.Format(domain.DateFormat),
			TotalRooms:     d.TotalRooms,
			AvailableRooms: d.AvailableRooms,
			PricePerNight:  d.PricePerNight,
		}
	}
	return &AvailabilityResponse{
		HotelID:      resp.HotelID,
		RoomTypeName: resp.RoomTypeName,
		Days:         days,
	}
}
