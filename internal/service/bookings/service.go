package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	bookingRepo "github.com/travelhub/hotel-booking-service/internal/infra/storage/booking"
	hotelClient "github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
	"github.com/travelhub/hotel-booking-service/internal/service/bookings/models"
)

// Service handles reads and lifecycle transitions of existing bookings.
// Creation goes through the create_booking usecase.
type Service struct {
	bookingRepo BookingRepository
	hotelClient HotelServiceClient
	logger      Logger
}

// NewService creates a bookings service.
func NewService(
	bookingRepo BookingRepository,
	hotelClient HotelServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		hotelClient: hotelClient,
		logger:      logger,
	}
}

// GetByID fetches one booking. The traveler who owns it and the hotel's
// owner may see it.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetTravelerBookings lists a traveler's own bookings.
func (s *Service) GetTravelerBookings(ctx context.Context, req *models.GetTravelerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetTravelerBookings: fetching bookings for traveler=%d", req.TravelerID)

	if req.UserID != req.TravelerID {
		s.logger.Warn("GetTravelerBookings: user=%d requested bookings of traveler=%d", req.UserID, req.TravelerID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetTravelerBookings: invalid status=%s for traveler=%d", *req.Status, req.TravelerID)
			return nil, ErrInvalidStatus
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByTravelerID(ctx, req.TravelerID, domainStatus)
	if err != nil {
		s.logger.Error("GetTravelerBookings: repository error for traveler=%d: %v", req.TravelerID, err)
		return nil, fmt.Errorf("%w: GetTravelerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTravelerBookings: fetched %d bookings for traveler=%d", len(bookings), req.TravelerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetHotelBookings lists a hotel's bookings for its owner.
func (s *Service) GetHotelBookings(ctx context.Context, req *models.GetHotelBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetHotelBookings: fetching bookings for hotel=%d, user=%d", req.HotelID, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.HotelID, req.UserID); err != nil {
		return nil, err
	}

	filter := domain.HotelBookingsFilter{
		HotelID:         req.HotelID,
		RoomTypeName:    req.RoomTypeName,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetHotelBookings: invalid status=%s for hotel=%d", *req.Status, req.HotelID)
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetByHotelWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetHotelBookings: repository error for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: GetHotelBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetHotelBookings: fetched %d bookings for hotel=%d", len(bookings), req.HotelID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus applies one lifecycle transition to a booking. Only the
// owner of the booking's hotel may do this, and only transitions listed in
// the domain transition table are accepted; anything else is rejected with
// ErrIllegalTransition and the stored state stays untouched.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerAccess(ctx, booking.HotelID, req.UserID); err != nil {
		return nil, err
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	if !booking.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for booking id=%d",
			booking.Status, newStatus, bookingID)
		return nil, ErrIllegalTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d moved %s -> %s", bookingID, booking.Status, newStatus)

	booking.Status = newStatus
	return models.FromDomainBooking(booking), nil
}

// Cancel cancels a booking. The traveler who owns it or the hotel owner may
// cancel, and only while the booking is still pending or confirmed.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.TravelerID != req.UserID {
		if err := s.checkOwnerAccess(ctx, booking.HotelID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
			return nil, ErrAccessDenied
		}
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", bookingID)

	booking.Status = domain.StatusCancelled
	return models.FromDomainBooking(booking), nil
}

// GetStatistics aggregates a hotel's booking counts and revenue for the
// owner dashboard.
func (s *Service) GetStatistics(ctx context.Context, hotelID int64, userID int64) (*models.StatisticsResponse, error) {
	s.logger.Info("GetStatistics: fetching statistics for hotel=%d, user=%d", hotelID, userID)

	if err := s.checkOwnerAccess(ctx, hotelID, userID); err != nil {
		return nil, err
	}

	total, err := s.bookingRepo.CountByHotel(ctx, hotelID, nil)
	if err != nil {
		s.logger.Error("GetStatistics: count error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetStatistics - repository error: %v", ErrInternal, err)
	}

	confirmedStatus := domain.StatusConfirmed
	confirmed, err := s.bookingRepo.CountByHotel(ctx, hotelID, &confirmedStatus)
	if err != nil {
		s.logger.Error("GetStatistics: count error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetStatistics - repository error: %v", ErrInternal, err)
	}

	pendingStatus := domain.StatusPending
	pending, err := s.bookingRepo.CountByHotel(ctx, hotelID, &pendingStatus)
	if err != nil {
		s.logger.Error("GetStatistics: count error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetStatistics - repository error: %v", ErrInternal, err)
	}

	revenue, err := s.bookingRepo.SumRevenue(ctx, hotelID, domain.RevenueStatuses)
	if err != nil {
		s.logger.Error("GetStatistics: revenue error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetStatistics - repository error: %v", ErrInternal, err)
	}

	stats := &domain.BookingStatistics{
		TotalBookings:     total,
		ConfirmedBookings: confirmed,
		PendingBookings:   pending,
		TotalRevenue:      revenue,
	}
	if total > 0 {
		stats.OccupancyRate = float64(confirmed) / float64(total) * 100
	}

	return models.FromDomainStatistics(stats), nil
}

// checkBookingAccess allows the owning traveler or the hotel owner.
func (s *Service) checkBookingAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.TravelerID == userID {
		return nil
	}
	if err := s.checkOwnerAccess(ctx, booking.HotelID, userID); err != nil {
		return ErrAccessDenied
	}
	return nil
}

// checkOwnerAccess verifies that the user owns the hotel.
func (s *Service) checkOwnerAccess(ctx context.Context, hotelID int64, userID int64) error {
	hotel, err := s.hotelClient.GetHotel(ctx, hotelID)
	if err != nil {
		if errors.Is(err, hotelClient.ErrHotelNotFound) {
			s.logger.Warn("checkOwnerAccess: hotel id=%d not found", hotelID)
			return ErrHotelNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get hotel id=%d: %v", hotelID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get hotel: %v", ErrInternal, err)
	}

	if !hotel.IsOwnedBy(userID) {
		s.logger.Warn("checkOwnerAccess: user=%d does not own hotel=%d", userID, hotelID)
		return ErrAccessDenied
	}

	return nil
}
