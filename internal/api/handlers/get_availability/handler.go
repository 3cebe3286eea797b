package get_availability

import (
	"errors"
	"net/http"

	"github.com/travelhub/hotel-booking-service/internal/api/handlers"
	getAvailability "github.com/travelhub/hotel-booking-service/internal/usecase/get_availability"
)

const (
	msgInvalidHotelID   = "invalid hotel id"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgMissingField     = "room_type, start_date and end_date are required"
	msgInvalidDateRange = "end_date must be after start_date"
	msgRoomTypeNotFound = "room type not found"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/availability?room_type=&start_date=&end_date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /hotels/{hotelId}/availability - Invalid hotel id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	roomType := r.URL.Query().Get("room_type")

	startDate, err := handlers.QueryDate(r, "start_date")
	if err != nil {
		h.logger.Warn("GET /hotels/%d/availability - Invalid start_date: %v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := handlers.QueryDate(r, "end_date")
	if err != nil {
		h.logger.Warn("GET /hotels/%d/availability - Invalid end_date: %v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailability.Request{
		HotelID:      hotelID,
		RoomTypeName: roomType,
	}
	if startDate != nil {
		req.StartDate = *startDate
	}
	if endDate != nil {
		req.EndDate = *endDate
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrMissingField):
			h.logger.Warn("GET /hotels/%d/availability - Missing field: %v", hotelID, err)
			handlers.RespondBadRequest(w, msgMissingField)

		case errors.Is(err, getAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /hotels/%d/availability - Invalid date range", hotelID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getAvailability.ErrRoomTypeNotFound):
			h.logger.Warn("GET /hotels/%d/availability - Room type %q not found", hotelID, roomType)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		default:
			h.logger.Error("GET /hotels/%d/availability - Failed: %v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/%d/availability - %d days returned for room_type=%s", hotelID, len(result.Days), roomType)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
