package update_room_type

import (
	"time"

	"github.com/travelhub/hotel-booking-service/internal/service/roomtypes/models"
)

// UpdateRoomTypeRequest HTTP request model; absent fields stay unchanged
type UpdateRoomTypeRequest struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	BasePricePerNight *float64 `json:"base_price_per_night,omitempty"`
	MaxGuests         *int     `json:"max_guests,omitempty"`
	TotalRooms        *int     `json:"total_rooms,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

// RoomTypeResponse HTTP response model
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

// ToServiceRequest converts the HTTP request to the service model.
func (r *UpdateRoomTypeRequest) ToServiceRequest(userID int64) *models.UpdateRequest {
	return &models.UpdateRequest{
		UserID:            userID,
		Name:              r.Name,
		Description:       r.Description,
		BasePricePerNight: r.BasePricePerNight,
		MaxGuests:         r.MaxGuests,
		TotalRooms:        r.TotalRooms,
		IsActive:          r.IsActive,
	}
}

// FromServiceResponse converts the service view to the HTTP model.
func FromServiceResponse(resp *models.RoomTypeResponse) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:                resp.ID,
		HotelID:           resp.HotelID,
		Name:              resp.Name,
		Description:       resp.Description,
		BasePricePerNight: resp.BasePricePerNight,
		MaxGuests:         resp.MaxGuests,
		TotalRooms:        resp.TotalRooms,
		IsActive:          resp.IsActive,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
