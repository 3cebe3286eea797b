package get_traveler_bookings

import (
	"errors"
	"net/http"

	"github.com/travelhub/hotel-booking-service/internal/api/handlers"
	"github.com/travelhub/hotel-booking-service/internal/api/middleware"
	"github.com/travelhub/hotel-booking-service/internal/service/bookings"
	"github.com/travelhub/hotel-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidTravelerID = "invalid traveler id"
	msgInvalidStatus     = "unknown booking status"
	msgAccessDenied      = "access denied"
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

// Handle GET /api/v1/travelers/{travelerId}/bookings?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	travelerID, err := handlers.PathInt64(r, "travelerId")
	if err != nil {
		h.logger.Warn("GET /travelers/{travelerId}/bookings - Invalid traveler id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTravelerID)
		return
	}

	req := &models.GetTravelerBookingsRequest{
		TravelerID: travelerID,
		UserID:     userID,
		Status:     handlers.QueryString(r, "status"),
	}

	result, err := h.service.GetTravelerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /travelers/%d/bookings - Access denied: user_id=%d", travelerID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /travelers/%d/bookings - Invalid status filter", travelerID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /travelers/%d/bookings - Failed: user_id=%d, error=%v", travelerID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
