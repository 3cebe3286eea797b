package create_booking

import (
	"errors"
	"net/http"

	"github.com/travelhub/hotel-booking-service/internal/api/handlers"
	"github.com/travelhub/hotel-booking-service/internal/api/middleware"
	createBooking "github.com/travelhub/hotel-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidHotelID     = "invalid hotel id"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgMissingField       = "missing required field"
	msgInvalidDateRange   = "check-out date must be after check-in date"
	msgPastDate           = "check-in date cannot be in the past"
	msgInvalidGuestCount  = "invalid number of guests"
	msgRequestsTooLong    = "special requests text is too long"
	msgHotelNotFound      = "hotel not found"
	msgUserNotFound       = "user not found"
	msgRoomTypeNotFound   = "room type not found"
	msgRoomTypeInactive   = "room type is not available for booking"
	msgNoRoomsAvailable   = "no rooms available for the selected dates"
	msgTravelerRequired   = "only travelers can create bookings"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hotels/{hotelId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("POST /hotels/{hotelId}/bookings - Invalid hotel id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels/%d/bookings - Invalid request body: %v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(hotelID, userID)
	if err != nil {
		h.logger.Warn("POST /hotels/%d/bookings - Failed to parse dates: %v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingField):
			h.logger.Warn("POST /hotels/%d/bookings - Missing field: user_id=%d, error=%v", hotelID, userID, err)
			handlers.RespondBadRequest(w, msgMissingField)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /hotels/%d/bookings - Invalid date range: user_id=%d", hotelID, userID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /hotels/%d/bookings - Past check-in date: user_id=%d", hotelID, userID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrInvalidGuestCount):
			h.logger.Warn("POST /hotels/%d/bookings - Invalid guest count: user_id=%d", hotelID, userID)
			handlers.RespondBadRequest(w, msgInvalidGuestCount)

		case errors.Is(err, createBooking.ErrSpecialRequestsTooLong):
			h.logger.Warn("POST /hotels/%d/bookings - Special requests too long: user_id=%d", hotelID, userID)
			handlers.RespondBadRequest(w, msgRequestsTooLong)

		case errors.Is(err, createBooking.ErrHotelNotFound):
			h.logger.Warn("POST /hotels/%d/bookings - Hotel not found", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /hotels/%d/bookings - User not found: user_id=%d", hotelID, userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrRoomTypeNotFound):
			h.logger.Warn("POST /hotels/%d/bookings - Room type not found: user_id=%d", hotelID, userID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, createBooking.ErrRoomTypeInactive):
			h.logger.Warn("POST /hotels/%d/bookings - Room type inactive: user_id=%d", hotelID, userID)
			handlers.RespondConflict(w, msgRoomTypeInactive)

		case errors.Is(err, createBooking.ErrNoRoomsAvailable):
			h.logger.Warn("POST /hotels/%d/bookings - No rooms available: user_id=%d", hotelID, userID)
			handlers.RespondConflict(w, msgNoRoomsAvailable)

		case errors.Is(err, createBooking.ErrTravelerRoleRequired):
			h.logger.Warn("POST /hotels/%d/bookings - Traveler role required: user_id=%d", hotelID, userID)
			handlers.RespondForbidden(w, msgTravelerRequired)

		default:
			h.logger.Error("POST /hotels/%d/bookings - Failed to create booking: user_id=%d, error=%v",
				hotelID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels/%d/bookings - Booking created: booking_id=%d, user_id=%d",
		hotelID, result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
