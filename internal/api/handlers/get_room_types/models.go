package get_room_types

import (
	"time"

	"github.com/travelhub/hotel-booking-service/internal/service/roomtypes/models"
)

// RoomTypeResponse HTTP model of one room type
type RoomTypeResponse struct {
	ID                int64   `json:"id"`
	HotelID           int64   `json:"hotel_id"`
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	BasePricePerNight float64 `json:"base_price_per_night"`
	MaxGuests         int     `json:"max_guests"`
	TotalRooms        int     `json:"total_rooms"`
	IsActive          bool    `json:"is_active"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

// RoomTypeListResponse HTTP response model
type RoomTypeListResponse struct {
	RoomTypes []*RoomTypeResponse `json:"room_types"`
	Total     int                 `json:"total"`
}

// FromServiceResponse converts the service list to the HTTP model.
func FromServiceResponse(resp *models.RoomTypeListResponse) *RoomTypeListResponse {
	out := make([]*RoomTypeResponse, len(resp.RoomTypes))
	for i, rt := range resp.RoomTypes {
		out[i] = &RoomTypeResponse{
			ID:                rt.ID,
			HotelID:           rt.HotelID,
			Name:              rt.Name,
			Description:       rt.Description,
			BasePricePerNight: rt.BasePricePerNight,
			MaxGuests:         rt.MaxGuests,
			TotalRooms:        rt.TotalRooms,
			IsActive:          rt.IsActive,
			CreatedAt:         rt.CreatedAt.Format(time.RFC3339),
			UpdatedAt:         rt.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &RoomTypeListResponse{RoomTypes: out, Total: resp.Total}
}
