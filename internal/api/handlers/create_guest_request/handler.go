package create_guest_request

import (
	"errors"
	"net/http"

	"github.com/travelhub/hotel-booking-service/internal/api/handlers"
	"github.com/travelhub/hotel-booking-service/internal/api/middleware"
	"github.com/travelhub/hotel-booking-service/internal/service/guestrequests"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidInput       = "invalid guest request parameters"
	msgBookingNotFound    = "booking not found"
	msgAccessDenied       = "access denied"
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

// Handle POST /api/v1/bookings/{bookingId}/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{bookingId}/requests - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CreateGuestRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/requests - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(bookingID, userID))
	if err != nil {
		switch {
		case errors.Is(err, guestrequests.ErrInvalidInput):
			h.logger.Warn("POST /bookings/%d/requests - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, guestrequests.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%d/requests - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, guestrequests.ErrAccessDenied):
			h.logger.Warn("POST /bookings/%d/requests - Access denied: user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /bookings/%d/requests - Failed: user_id=%d, error=%v", bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/requests - Guest request created: id=%d, type=%s",
		bookingID, result.ID, result.Type)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
