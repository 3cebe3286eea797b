package guestrequests

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	bookingRepo "github.com/travelhub/hotel-booking-service/internal/infra/storage/booking"
	requestRepo "github.com/travelhub/hotel-booking-service/internal/infra/storage/guestrequest"
	hotelClient "github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
	"github.com/travelhub/hotel-booking-service/internal/service/guestrequests/models"
)

// Service handles guest requests attached to bookings. Travelers create
// them against their own bookings; hotel staff triage and resolve them.
type Service struct {
	requestRepo RequestRepository
	bookingRepo BookingRepository
	hotelClient HotelServiceClient
	logger      Logger
}

// NewService creates a guest requests service.
func NewService(
	requestRepo RequestRepository,
	bookingRepo BookingRepository,
	hotelClient HotelServiceClient,
	logger Logger,
) *Service {
	return &Service{
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		hotelClient: hotelClient,
		logger:      logger,
	}
}

// Create attaches a new request to a booking. Only the traveler who owns
// the booking may create one, and only while the booking is still active.
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.RequestResponse, error) {
	s.logger.Info("Create: new guest request for booking=%d by user=%d, type=%s",
		req.BookingID, req.UserID, req.Type)

	requestType := domain.RequestType(req.Type)
	if !requestType.Valid() {
		s.logger.Warn("Create: invalid request type=%s for booking=%d", req.Type, req.BookingID)
		return nil, fmt.Errorf("%w: unknown request type %q", ErrInvalidInput, req.Type)
	}

	if req.Details == "" {
		return nil, fmt.Errorf("%w: details are required", ErrInvalidInput)
	}
	if len(req.Details) > domain.MaxRequestDetailsLength {
		return nil, fmt.Errorf("%w: details exceed %d characters", ErrInvalidInput, domain.MaxRequestDetailsLength)
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.RequestPriority(*req.Priority)
		if !priority.Valid() {
			s.logger.Warn("Create: invalid priority=%s for booking=%d", *req.Priority, req.BookingID)
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *req.Priority)
		}
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Create: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Create: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	if booking.TravelerID != req.UserID {
		s.logger.Warn("Create: user=%d does not own booking=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	request := &domain.GuestRequest{
		BookingID: req.BookingID,
		Type:      requestType,
		Details:   req.Details,
		Priority:  priority,
		Status:    domain.RequestStatusPending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		s.logger.Error("Create: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: guest request id=%d created for booking=%d", created.ID, req.BookingID)
	return models.FromDomainRequest(created), nil
}

// GetByBooking lists a booking's requests for its traveler or the hotel owner.
func (s *Service) GetByBooking(ctx context.Context, bookingID int64, userID int64) (*models.RequestListResponse, error) {
	s.logger.Info("GetByBooking: fetching requests for booking=%d, user=%d", bookingID, userID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBooking - repository error: %v", ErrInternal, err)
	}

	if booking.TravelerID != userID {
		if err := s.checkOwnerAccess(ctx, booking.HotelID, userID); err != nil {
			s.logger.Warn("GetByBooking: access denied for user=%d to booking=%d", userID, bookingID)
			return nil, ErrAccessDenied
		}
	}

	requests, err := s.requestRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		s.logger.Error("GetByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBooking - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRequestList(requests), nil
}

// GetByHotel lists all requests across a hotel's bookings for its owner.
func (s *Service) GetByHotel(ctx context.Context, hotelID int64, userID int64) (*models.RequestListResponse, error) {
	s.logger.Info("GetByHotel: fetching requests for hotel=%d, user=%d", hotelID, userID)

	if err := s.checkOwnerAccess(ctx, hotelID, userID); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.GetByHotelID(ctx, hotelID)
	if err != nil {
		s.logger.Error("GetByHotel: repository error for hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetByHotel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByHotel: fetched %d requests for hotel=%d", len(requests), hotelID)
	return models.FromDomainRequestList(requests), nil
}

// Update applies staff changes (status, priority, assignment) to a request.
// Only the owner of the booking's hotel may update. Reaching completed
// stamps completed_at; leaving it clears the stamp.
func (s *Service) Update(ctx context.Context, requestID int64, req *models.UpdateRequest) (*models.RequestResponse, error) {
	s.logger.Info("Update: updating request id=%d by user=%d", requestID, req.UserID)

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("Update: request id=%d not found", requestID)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("Update: repository error for request id=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, request.BookingID)
	if err != nil {
		s.logger.Error("Update: repository error for booking id=%d: %v", request.BookingID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerAccess(ctx, booking.HotelID, req.UserID); err != nil {
		s.logger.Warn("Update: access denied for user=%d to request=%d", req.UserID, requestID)
		return nil, err
	}

	if req.Status != nil {
		status := domain.RequestStatus(*req.Status)
		if !status.Valid() {
			s.logger.Warn("Update: invalid status=%s for request id=%d", *req.Status, requestID)
			return nil, fmt.Errorf("%w: unknown request status %q", ErrInvalidInput, *req.Status)
		}
		request.Status = status
		if status == domain.RequestStatusCompleted {
			now := time.Now()
			request.CompletedAt = &now
		} else {
			request.CompletedAt = nil
		}
	}

	if req.Priority != nil {
		priority := domain.RequestPriority(*req.Priority)
		if !priority.Valid() {
			s.logger.Warn("Update: invalid priority=%s for request id=%d", *req.Priority, requestID)
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *req.Priority)
		}
		request.Priority = priority
	}

	if req.AssignedTo != nil {
		request.AssignedTo = req.AssignedTo
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("Update: repository error for request id=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: request id=%d updated, status=%s", requestID, request.Status)
	return models.FromDomainRequest(request), nil
}

// checkOwnerAccess verifies that the user owns the hotel.
func (s *Service) checkOwnerAccess(ctx context.Context, hotelID int64, userID int64) error {
	hotel, err := s.hotelClient.GetHotel(ctx, hotelID)
	if err != nil {
		if errors.Is(err, hotelClient.ErrHotelNotFound) {
			return ErrHotelNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get hotel id=%d: %v", hotelID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get hotel: %v", ErrInternal, err)
	}

	if !hotel.IsOwnedBy(userID) {
		return ErrAccessDenied
	}

	return nil
}
