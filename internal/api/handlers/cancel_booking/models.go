package cancel_booking

import (
	"time"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	"github.com/travelhub/hotel-booking-service/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64   `json:"id"`
	HotelID          int64   `json:"hotel_id"`
	TravelerID       int64   `json:"traveler_id"`
	RoomTypeName     string  `json:"room_type"`
	CheckInDate      string  `json:"check_in_date"`
	CheckOutDate     string  `json:"check_out_date"`
	NumGuests        int     `json:"num_guests"`
	Nights           int     `json:"nights"`
	TotalPrice       float64 `json:"total_price"`
	Status           string  `json:"booking_status"`
	SpecialRequests  *string `json:"special_requests,omitempty"`
	ConfirmationCode string  `json:"confirmation_code"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// FromServiceResponse converts the service view to the HTTP model.
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		HotelID:          resp.HotelID,
		TravelerID:       resp.TravelerID,
		RoomTypeName:     resp.RoomTypeName,
		CheckInDate:      resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:     resp.CheckOutDate.Format(domain.DateFormat),
		NumGuests:        resp.NumGuests,
		Nights:           resp.Nights,
		TotalPrice:       resp.TotalPrice,
		Status:           resp.Status,
		SpecialRequests:  resp.SpecialRequests,
		ConfirmationCode: resp.ConfirmationCode,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
