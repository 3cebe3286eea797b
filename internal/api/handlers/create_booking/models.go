package create_booking

import (
	"time"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	createBooking "github.com/travelhub/hotel-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomTypeName    string  `json:"room_type"`
	CheckInDate     string  `json:"check_in_date"`  // "2026-09-01"
	CheckOutDate    string  `json:"check_out_date"` // "2026-09-04"
	NumGuests       int     `json:"num_guests"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

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

// ToUseCaseRequest converts the HTTP request, parsing dates.
func (r *CreateBookingRequest) ToUseCaseRequest(hotelID, travelerID int64) (*createBooking.Request, error) {
	var checkIn, checkOut time.Time
	var err error

	if r.CheckInDate != "" {
		checkIn, err = time.Parse(domain.DateFormat, r.CheckInDate)
		if err != nil {
			return nil, err
		}
	}
	if r.CheckOutDate != "" {
		checkOut, err = time.Parse(domain.DateFormat, r.CheckOutDate)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		TravelerID:      travelerID,
		HotelID:         hotelID,
		RoomTypeName:    r.RoomTypeName,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       r.NumGuests,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
