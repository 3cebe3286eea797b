package get_hotel_requests

import (
	"errors"
	"net/http"

	"github.com/travelhub/hotel-booking-service/internal/api/handlers"
	"github.com/travelhub/hotel-booking-service/internal/api/middleware"
	"github.com/travelhub/hotel-booking-service/internal/service/guestrequests"
)

const (
	msgInvalidHotelID = "invalid hotel id"
	msgHotelNotFound  = "hotel not found"
	msgAccessDenied   = "access denied"
)

type Handler struct {
	service GuestRequestService
	logger  Logger
}

func NewHandler(service GuestRequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /hotels/{hotelId}/requests - Invalid hotel id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	result, err := h.service.GetByHotel(r.Context(), hotelID, userID)
	if err != nil {
		switch {
		case errors.Is(err, guestrequests.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/%d/requests - Hotel not found", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, guestrequests.ErrAccessDenied):
			h.logger.Warn("GET /hotels/%d/requests - Access denied: user_id=%d", hotelID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /hotels/%d/requests - Failed: user_id=%d, error=%v", hotelID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
