package create_booking

import (
	"context"
	"time"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	"github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
	"github.com/travelhub/hotel-booking-service/internal/integrations/travelerservice"
)

// BookingRepository is the storage surface for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByHotelWithFilter(ctx context.Context, filter domain.HotelBookingsFilter) ([]*domain.Booking, error)
}

// RoomTypeRepository resolves room types for pricing and capacity.
type RoomTypeRepository interface {
	GetByHotelAndName(ctx context.Context, hotelID int64, name string) (*domain.RoomType, error)
}

// HotelServiceClient resolves hotels from the hotel catalog.
type HotelServiceClient interface {
	GetHotel(ctx context.Context, hotelID int64) (*hotelservice.Hotel, error)
}

// TravelerServiceClient resolves the requesting user's profile.
type TravelerServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*travelerservice.User, error)
}

// TransactionManager runs a function inside a serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the usecase needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
