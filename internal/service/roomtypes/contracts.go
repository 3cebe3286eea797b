package roomtypes

import (
	"context"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	"github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
)

// RoomTypeRepository is the storage surface for room types.
type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error)
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
	GetByHotelID(ctx context.Context, hotelID int64) ([]*domain.RoomType, error)
	Update(ctx context.Context, rt *domain.RoomType) error
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
