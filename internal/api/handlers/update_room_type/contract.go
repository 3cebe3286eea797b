package update_room_type

import (
	"context"

	"github.com/travelhub/hotel-booking-service/internal/service/roomtypes/models"
)

type RoomTypeService interface {
	Update(ctx context.Context, roomTypeID int64, req *models.UpdateRequest) (*models.RoomTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
