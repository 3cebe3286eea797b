package get_booking_statistics

import (
	"errors"
	"net/http"

	"github.com/travelhub/hotel-booking-service/internal/api/handlers"
	"github.com/travelhub/hotel-booking-service/internal/api/middleware"
	"github.com/travelhub/hotel-booking-service/internal/service/bookings"
	"github.com/travelhub/hotel-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidHotelID = "invalid hotel id"
	msgHotelNotFound  = "hotel not found"
	msgAccessDenied   = "access denied"
)

// StatisticsResponse HTTP response model
type StatisticsResponse struct {
	TotalBookings     int64   `json:"total_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	OccupancyRate     float64 `json:"occupancy_rate"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/booking-statistics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /hotels/{hotelId}/booking-statistics - Invalid hotel id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	result, err := h.service.GetStatistics(r.Context(), hotelID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/%d/booking-statistics - Hotel not found", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /hotels/%d/booking-statistics - Access denied: user_id=%d", hotelID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /hotels/%d/booking-statistics - Failed: user_id=%d, error=%v", hotelID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.StatisticsResponse) *StatisticsResponse {
	return &StatisticsResponse{
		TotalBookings:     resp.TotalBookings,
		ConfirmedBookings: resp.ConfirmedBookings,
		PendingBookings:   resp.PendingBookings,
		TotalRevenue:      resp.TotalRevenue,
		OccupancyRate:     resp.OccupancyRate,
	}
}
