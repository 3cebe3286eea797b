package create_guest_request

import (
	"context"

	"github.com/travelhub/hotel-booking-service/internal/service/guestrequests/models"
)

type GuestRequestService interface {
	Create(ctx context.Context, req *models.CreateRequest) (*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
