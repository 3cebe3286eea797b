package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	roomTypeRepo "github.com/travelhub/hotel-booking-service/internal/infra/storage/roomtype"
	hotelClient "github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
	travelerClient "github.com/travelhub/hotel-booking-service/internal/integrations/travelerservice"
	"github.com/travelhub/hotel-booking-service/pkg/ptr"
)

// UseCase creates bookings
type UseCase struct {
	bookingRepo    BookingRepository
	roomTypeRepo   RoomTypeRepository
	hotelClient    HotelServiceClient
	travelerClient TravelerServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
	maxGuests      int // fallback cap when the room type has none
}

// NewUseCase creates a new create booking usecase.
func NewUseCase(
	bookingRepo BookingRepository,
	roomTypeRepo RoomTypeRepository,
	hotelClient HotelServiceClient,
	travelerClient TravelerServiceClient,
	txManager TransactionManager,
	maxGuests int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		roomTypeRepo:   roomTypeRepo,
		hotelClient:    hotelClient,
		travelerClient: travelerClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		maxGuests:      maxGuests,
	}
}

// Execute creates a booking. Availability is checked and the row inserted
// inside one serializable transaction so two travelers cannot take the last
// room of a type at the same time.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: traveler=%d, hotel=%d, roomType=%s, checkIn=%s, checkOut=%s, guests=%d",
		req.TravelerID, req.HotelID, req.RoomTypeName,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat), req.NumGuests)

	now := uc.timeProvider.Now()

	// 1. Validate the request (missing fields, date range, past date, guests)
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. The hotel must exist
	if _, err := uc.hotelClient.GetHotel(ctx, req.HotelID); err != nil {
		if errors.Is(err, hotelClient.ErrHotelNotFound) {
			uc.logger.Warn("CreateBooking: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	// 3. The requesting user must be a traveler
	user, err := uc.travelerClient.GetUser(ctx, req.TravelerID)
	if err != nil {
		if errors.Is(err, travelerClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.TravelerID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.TravelerID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.IsTraveler() {
		uc.logger.Warn("CreateBooking: user id=%d has role %q, traveler required", req.TravelerID, user.Role)
		return nil, ErrTravelerRoleRequired
	}

	var result *domain.Booking

	// 4. Room type lookup, availability check and insert in one transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		roomType, err := uc.roomTypeRepo.GetByHotelAndName(txCtx, req.HotelID, req.RoomTypeName)
		if err != nil {
			if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
				uc.logger.Warn("CreateBooking: room type %q not found in hotel id=%d", req.RoomTypeName, req.HotelID)
				return ErrRoomTypeNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room type: %v", err)
			return fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
		}

		if !roomType.IsActive {
			uc.logger.Warn("CreateBooking: room type %q is inactive in hotel id=%d", req.RoomTypeName, req.HotelID)
			return ErrRoomTypeInactive
		}

		if req.NumGuests > roomType.GuestLimit(uc.maxGuests) {
			uc.logger.Warn("CreateBooking: %d guests exceeds limit %d for room type %q",
				req.NumGuests, roomType.GuestLimit(uc.maxGuests), req.RoomTypeName)
			return fmt.Errorf("%w: room type allows at most %d guests",
				ErrInvalidGuestCount, roomType.GuestLimit(uc.maxGuests))
		}

		// Availability only applies when the hotel tracks inventory for
		// this room type. The overlapping active bookings are locked
		// (FOR UPDATE) so a concurrent insert serializes behind us.
		if roomType.TracksInventory() {
			filter := domain.HotelBookingsFilter{
				HotelID:      req.HotelID,
				RoomTypeName: ptr.Ptr(req.RoomTypeName),
				StartDate:    ptr.Ptr(req.CheckInDate),
				EndDate:      ptr.Ptr(req.CheckOutDate),
			}

			overlapping, err := uc.bookingRepo.GetByHotelWithFilter(txCtx, filter)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
				return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
			}

			occupied := countMaxOccupancy(req.CheckInDate, req.CheckOutDate, overlapping)
			if occupied >= roomType.TotalRooms {
				uc.logger.Warn("CreateBooking: no rooms available, %d/%d occupied for room type %q",
					occupied, roomType.TotalRooms, req.RoomTypeName)
				return ErrNoRoomsAvailable
			}

			uc.logger.Info("CreateBooking: rooms available, %d/%d occupied", occupied, roomType.TotalRooms)
		}

		nights := domain.Nights(req.CheckInDate, req.CheckOutDate)
		totalPrice := domain.TotalPrice(roomType.BasePricePerNight, nights, req.NumGuests)

		booking := &domain.Booking{
			HotelID:          req.HotelID,
			TravelerID:       req.TravelerID,
			RoomTypeName:     req.RoomTypeName,
			CheckInDate:      domain.DateOnly(req.CheckInDate),
			CheckOutDate:     domain.DateOnly(req.CheckOutDate),
			NumGuests:        req.NumGuests,
			TotalPrice:       totalPrice,
			Status:           domain.StatusPending,
			SpecialRequests:  req.SpecialRequests,
			ConfirmationCode: newConfirmationCode(),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f, code=%s",
		result.ID, result.TotalPrice, result.ConfirmationCode)

	return &Response{
		ID:               result.ID,
		HotelID:          result.HotelID,
		TravelerID:       result.TravelerID,
		RoomTypeName:     result.RoomTypeName,
		CheckInDate:      result.CheckInDate,
		CheckOutDate:     result.CheckOutDate,
		NumGuests:        result.NumGuests,
		Nights:           result.Nights(),
		TotalPrice:       result.TotalPrice,
		Status:           string(result.Status),
		SpecialRequests:  result.SpecialRequests,
		ConfirmationCode: result.ConfirmationCode,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// newConfirmationCode builds a short human-readable booking code.
func newConfirmationCode() string {
	id := uuid.New()
	return fmt.Sprintf("BK-%X", id[:6])
}
