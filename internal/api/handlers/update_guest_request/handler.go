package update_guest_request

import (
	"errors"
	"net/http"

	"github.com/travelhub/hotel-booking-service/internal/api/handlers"
	"github.com/travelhub/hotel-booking-service/internal/api/middleware"
	"github.com/travelhub/hotel-booking-service/internal/service/guestrequests"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRequestID   = "invalid request id"
	msgInvalidInput       = "invalid guest request parameters"
	msgRequestNotFound    = "guest request not found"
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

// Handle PUT /api/v1/requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	requestID, err := handlers.PathInt64(r, "requestId")
	if err != nil {
		h.logger.Warn("PUT /requests/{requestId} - Invalid request id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var req UpdateGuestRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /requests/%d - Invalid request body: %v", requestID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), requestID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, guestrequests.ErrInvalidInput):
			h.logger.Warn("PUT /requests/%d - Invalid input: %v", requestID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, guestrequests.ErrRequestNotFound):
			h.logger.Warn("PUT /requests/%d - Guest request not found", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, guestrequests.ErrAccessDenied):
			h.logger.Warn("PUT /requests/%d - Access denied: user_id=%d", requestID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /requests/%d - Failed: user_id=%d, error=%v", requestID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /requests/%d - Guest request updated, status=%s by user_id=%d",
		requestID, result.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
