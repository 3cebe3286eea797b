package get_room_types

import (
	"net/http"

	"github.com/travelhub/hotel-booking-service/internal/api/handlers"
)

const msgInvalidHotelID = "invalid hotel id"

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

// Handle GET /api/v1/hotels/{hotelId}/room-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /hotels/{hotelId}/room-types - Invalid hotel id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	result, err := h.service.ListByHotel(r.Context(), hotelID)
	if err != nil {
		h.logger.Error("GET /hotels/%d/room-types - Failed: %v", hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
