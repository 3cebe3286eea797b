package get_availability

import (
	"context"
	"time"

	"github.com/travelhub/hotel-booking-service/internal/domain"
)

// BookingRepository is the storage surface for bookings.
type BookingRepository interface {
	GetByHotelWithFilter(ctx context.Context, filter domain.HotelBookingsFilter) ([]*domain.Booking, error)
}

// RoomTypeRepository resolves room types for the availability report.
type RoomTypeRepository interface {
	GetByHotelAndName(ctx context.Context, hotelID int64, name string) (*domain.RoomType, error)
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
