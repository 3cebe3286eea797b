package get_room_types

import (
	"context"

	"github.com/travelhub/hotel-booking-service/internal/service/roomtypes/models"
)

type RoomTypeService interface {
	ListByHotel(ctx context.Context, hotelID int64) (*models.RoomTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
