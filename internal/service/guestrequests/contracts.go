package guestrequests

import (
	"context"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	"github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
)

// RequestRepository is the storage surface for guest requests.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.GuestRequest) (*domain.GuestRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.GuestRequest, error)
	GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.GuestRequest, error)
	GetByHotelID(ctx context.Context, hotelID int64) ([]*domain.GuestRequest, error)
	Update(ctx context.Context, req *domain.GuestRequest) error
}

// BookingRepository resolves bookings for ownership checks.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// HotelServiceClient resolves hotels for ownership checks.
type HotelServiceClient interface {
	GetHotel(ctx context.Context, hotelID int64) (*hotelservice.Hotel, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
