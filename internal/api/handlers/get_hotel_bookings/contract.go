package get_hotel_bookings

import (
	"context"

	"github.com/travelhub/hotel-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetHotelBookings(ctx context.Context, req *models.GetHotelBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
