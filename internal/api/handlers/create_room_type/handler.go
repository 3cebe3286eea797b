package create_room_type

import (
	"errors"
	"net/http"

	"github.com/travelhub/hotel-booking-service/internal/api/handlers"
	"github.com/travelhub/hotel-booking-service/internal/api/middleware"
	"github.com/travelhub/hotel-booking-service/internal/service/roomtypes"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidHotelID     = "invalid hotel id"
	msgInvalidInput       = "invalid room type parameters"
	msgHotelNotFound      = "hotel not found"
	msgAccessDenied       = "access denied"
	msgDuplicateName      = "room type with this name already exists"
)

type Handler struct {
	service RoomTypeService
	logger  Logger
}

func NewHandler(service RoomTypeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/hotels/{hotelId}/room-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("POST /hotels/{hotelId}/room-types - Invalid hotel id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	var req CreateRoomTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels/%d/room-types - Invalid request body: %v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(hotelID, userID))
	if err != nil {
		switch {
		case errors.Is(err, roomtypes.ErrInvalidInput):
			h.logger.Warn("POST /hotels/%d/room-types - Invalid input: %v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, roomtypes.ErrHotelNotFound):
			h.logger.Warn("POST /hotels/%d/room-types - Hotel not found", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, roomtypes.ErrAccessDenied):
			h.logger.Warn("POST /hotels/%d/room-types - Access denied: user_id=%d", hotelID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, roomtypes.ErrDuplicateName):
			h.logger.Warn("POST /hotels/%d/room-types - Duplicate name %q", hotelID, req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		default:
			h.logger.Error("POST /hotels/%d/room-types - Failed: user_id=%d, error=%v", hotelID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels/%d/room-types - Room type created: id=%d, name=%q", hotelID, result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
