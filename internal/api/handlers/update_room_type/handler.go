package update_room_type

import (
	"errors"
	"net/http"

	"github.com/travelhub/hotel-booking-service/internal/api/handlers"
	"github.com/travelhub/hotel-booking-service/internal/api/middleware"
	"github.com/travelhub/hotel-booking-service/internal/service/roomtypes"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRoomTypeID  = "invalid room type id"
	msgInvalidInput       = "invalid room type parameters"
	msgRoomTypeNotFound   = "room type not found"
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

// Handle PUT /api/v1/room-types/{roomTypeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	roomTypeID, err := handlers.PathInt64(r, "roomTypeId")
	if err != nil {
		h.logger.Warn("PUT /room-types/{roomTypeId} - Invalid room type id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	var req UpdateRoomTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /room-types/%d - Invalid request body: %v", roomTypeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), roomTypeID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, roomtypes.ErrInvalidInput):
			h.logger.Warn("PUT /room-types/%d - Invalid input: %v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, roomtypes.ErrRoomTypeNotFound):
			h.logger.Warn("PUT /room-types/%d - Room type not found", roomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, roomtypes.ErrHotelNotFound):
			h.logger.Warn("PUT /room-types/%d - Hotel not found", roomTypeID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, roomtypes.ErrAccessDenied):
			h.logger.Warn("PUT /room-types/%d - Access denied: user_id=%d", roomTypeID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, roomtypes.ErrDuplicateName):
			h.logger.Warn("PUT /room-types/%d - Duplicate name", roomTypeID)
			handlers.RespondConflict(w, msgDuplicateName)

		default:
			h.logger.Error("PUT /room-types/%d - Failed: user_id=%d, error=%v", roomTypeID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /room-types/%d - Room type updated by user_id=%d", roomTypeID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
