package models

import (
	"fmt"
	"time"

	"github.com/travelhub/hotel-booking-service/internal/domain"
)

// GetTravelerBookingsRequest parameters for listing a traveler's bookings
type GetTravelerBookingsRequest struct {
	TravelerID int64
	UserID     int64 // requester, must match TravelerID
	Status     *string
}

// GetHotelBookingsRequest parameters for the owner's booking list
type GetHotelBookingsRequest struct {
	HotelID         int64
	UserID          int64 // requester, must own the hotel
	RoomTypeName    *string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// UpdateStatusRequest parameters for a lifecycle transition
type UpdateStatusRequest struct {
	UserID int64 // requester, must own the hotel
	Status string
}

// CancelBookingRequest parameters for cancelling a booking
type CancelBookingRequest struct {
	UserID int64 // requester, traveler who owns the booking or the hotel owner
}

// BookingResponse is the service-level view of a booking
type BookingResponse struct {
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

// BookingListResponse is a list of bookings
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// StatisticsResponse is the owner-dashboard aggregate
type StatisticsResponse struct {
	TotalBookings     int64
	ConfirmedBookings int64
	PendingBookings   int64
	TotalRevenue      float64
	OccupancyRate     float64
}

// FromDomainBooking converts a domain booking to the service view.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		HotelID:          b.HotelID,
		TravelerID:       b.TravelerID,
		RoomTypeName:     b.RoomTypeName,
		CheckInDate:      b.CheckInDate,
		CheckOutDate:     b.CheckOutDate,
		NumGuests:        b.NumGuests,
		Nights:           b.Nights(),
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		SpecialRequests:  b.SpecialRequests,
		ConfirmationCode: b.ConfirmationCode,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}

// FromDomainStatistics converts the domain aggregate.
func FromDomainStatistics(s *domain.BookingStatistics) *StatisticsResponse {
	return &StatisticsResponse{
		TotalBookings:     s.TotalBookings,
		ConfirmedBookings: s.ConfirmedBookings,
		PendingBookings:   s.PendingBookings,
		TotalRevenue:      s.TotalRevenue,
		OccupancyRate:     s.OccupancyRate,
	}
}

// ToDomainBookingStatus validates and converts a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}
