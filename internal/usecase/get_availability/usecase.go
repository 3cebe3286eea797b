package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	roomTypeRepo "github.com/travelhub/hotel-booking-service/internal/infra/storage/roomtype"
	"github.com/travelhub/hotel-booking-service/pkg/ptr"
)

// UseCase reports per-day availability of a room type
type UseCase struct {
	bookingRepo  BookingRepository
	roomTypeRepo RoomTypeRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new availability usecase.
func NewUseCase(
	bookingRepo BookingRepository,
	roomTypeRepo RoomTypeRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomTypeRepo: roomTypeRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute builds the availability report. This is a read-only view and runs
// without a transaction; create_booking re-checks availability under a
// serializable transaction before inserting.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: hotel=%d, roomType=%s, start=%s, end=%s",
		req.HotelID, req.RoomTypeName,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	roomType, err := uc.roomTypeRepo.GetByHotelAndName(ctx, req.HotelID, req.RoomTypeName)
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
			uc.logger.Warn("GetAvailability: room type %q not found in hotel id=%d", req.RoomTypeName, req.HotelID)
			return nil, ErrRoomTypeNotFound
		}
		uc.logger.Error("GetAvailability: failed to get room type: %v", err)
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}

	filter := domain.HotelBookingsFilter{
		HotelID:      req.HotelID,
		RoomTypeName: ptr.Ptr(req.RoomTypeName),
		StartDate:    ptr.Ptr(req.StartDate),
		EndDate:      ptr.Ptr(req.EndDate),
	}

	bookings, err := uc.bookingRepo.GetByHotelWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp := &Response{
		HotelID:      req.HotelID,
		RoomTypeName: req.RoomTypeName,
	}

	for night := domain.DateOnly(req.StartDate); night.Before(domain.DateOnly(req.EndDate)); night = night.AddDate(0, 0, 1) {
		occupied := 0
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			if b.OccupiesNight(night) {
				occupied++
			}
		}

		// With untracked inventory (TotalRooms = 0) this clamps to 0;
		// callers read TotalRooms = 0 as "no inventory limit".
		available := roomType.TotalRooms - occupied
		if available < 0 {
			available = 0
		}

		resp.Days = append(resp.Days, DayAvailability{
			Date:           night,
			TotalRooms:     roomType.TotalRooms,
			AvailableRooms: available,
			PricePerNight:  roomType.BasePricePerNight,
		})
	}

	uc.logger.Info("GetAvailability: %d days computed for hotel=%d, roomType=%s",
		len(resp.Days), req.HotelID, req.RoomTypeName)

	return resp, nil
}

func validateRequest(req *Request) error {
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrMissingField)
	}
	if req.RoomTypeName == "" {
		return fmt.Errorf("%w: roomTypeName is required", ErrMissingField)
	}
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrMissingField)
	}
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrMissingField)
	}
	if !req.EndDate.After(req.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}
