package get_traveler_bookings

import (
	"time"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	"github.com/travelhub/hotel-booking-service/internal/service/bookings/models"
)

// BookingResponse HTTP model of one booking in the list
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

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromServiceResponse converts the service list to the HTTP model.
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	out := make([]*BookingResponse, len(resp.Bookings))
	for i, b := range resp.Bookings {
		out[i] = &BookingResponse{
			ID:               b.ID,
			HotelID:          b.HotelID,
			TravelerID:       b.TravelerID,
			RoomTypeName:     b.RoomTypeName,
			CheckInDate:      b.CheckInDate.Format(domain.DateFormat),
			CheckOutDate:     b.CheckOutDate.Format(domain.DateFormat),
			NumGuests:        b.NumGuests,
			Nights:           b.Nights,
			TotalPrice:       b.TotalPrice,
			Status:           b.Status,
			SpecialRequests:  b.SpecialRequests,
			ConfirmationCode: b.ConfirmationCode,
			CreatedAt:        b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{Bookings: out, Total: resp.Total}
}
