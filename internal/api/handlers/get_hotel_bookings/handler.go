package get_hotel_bookings

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
	msgInvalidDate    = "invalid date format, expected YYYY-MM-DD"
	msgInvalidStatus  = "unknown booking status"
	msgHotelNotFound  = "hotel not found"
	msgAccessDenied   = "access denied"
)

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

// Handle GET /api/v1/hotels/{hotelId}/bookings?room_type=&start_date=&end_date=&status=&include_inactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /hotels/{hotelId}/bookings - Invalid hotel id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	startDate, err := handlers.QueryDate(r, "start_date")
	if err != nil {
		h.logger.Warn("GET /hotels/%d/bookings - Invalid start_date: %v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := handlers.QueryDate(r, "end_date")
	if err != nil {
		h.logger.Warn("GET /hotels/%d/bookings - Invalid end_date: %v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.GetHotelBookingsRequest{
		HotelID:         hotelID,
		UserID:          userID,
		RoomTypeName:    handlers.QueryString(r, "room_type"),
		StartDate:       startDate,
		EndDate:         endDate,
		Status:          handlers.QueryString(r, "status"),
		IncludeInactive: handlers.QueryBool(r, "include_inactive"),
	}

	result, err := h.service.GetHotelBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/%d/bookings - Hotel not found", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /hotels/%d/bookings - Access denied: user_id=%d", hotelID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /hotels/%d/bookings - Invalid status filter", hotelID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /hotels/%d/bookings - Failed: user_id=%d, error=%v", hotelID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
