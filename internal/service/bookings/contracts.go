package bookings

import (
	"context"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	"github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
)

// BookingRepository is the storage surface the service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTravelerID(ctx context.Context, travelerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByHotelWithFilter(ctx context.Context, filter domain.HotelBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	CountByHotel(ctx context.Context, hotelID int64, status *domain.BookingStatus) (int64, error)
	SumRevenue(ctx context.Context, hotelID int64, statuses []domain.BookingStatus) (float64, error)
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
