package create_room_type

import (
	"context"

	"github.com/travelhub/hotel-booking-service/internal/service/roomtypes/models"
)

type RoomTypeService interface {
	Create(ctx context.Context, req *models.CreateRequest) (*models.RoomTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
