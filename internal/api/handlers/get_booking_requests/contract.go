package get_booking_requests

import (
	"context"

	"github.com/travelhub/hotel-booking-service/internal/service/guestrequests/models"
)

type GuestRequestService interface {
	GetByBooking(ctx context.Context, bookingID int64, userID int64) (*models.RequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
