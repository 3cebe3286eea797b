package get_booking_statistics

import (
	"context"

	"github.com/travelhub/hotel-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetStatistics(ctx context.Context, hotelID int64, userID int64) (*models.StatisticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
