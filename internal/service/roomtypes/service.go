package roomtypes

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	roomTypeRepo "github.com/travelhub/hotel-booking-service/internal/infra/storage/roomtype"
	hotelClient "github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
	"github.com/travelhub/hotel-booking-service/internal/service/roomtypes/models"
)

// Service handles room type management. Listing is public; create and
// update require hotel ownership. The booking calculator reads room types,
// it never writes them.
type Service struct {
	roomTypeRepo RoomTypeRepository
	hotelClient  HotelServiceClient
	logger       Logger
}

// NewService creates a room types service.
func NewService(
	roomTypeRepo RoomTypeRepository,
	hotelClient HotelServiceClient,
	logger Logger,
) *Service {
	return &Service{
		roomTypeRepo: roomTypeRepo,
		hotelClient:  hotelClient,
		logger:       logger,
	}
}

// ListByHotel returns a hotel's active room types. Public.
func (s *Service) ListByHotel(ctx context.Context, hotelID int64) (*models.RoomTypeListResponse, error) {
	s.logger.Info("ListByHotel: fetching room types for hotel=%d", hotelID)

	roomTypes, err := s.roomTypeRepo.GetByHotelID(ctx, hotelID)
	if err != nil {
		s.logger.Error("ListByHotel: repository error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: ListByHotel - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomTypeList(roomTypes), nil
}

// Create adds a room type to a hotel the user owns.
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.RoomTypeResponse, error) {
	s.logger.Info("Create: new room type %q for hotel=%d by user=%d", req.Name, req.HotelID, req.UserID)

	if err := validateRoomType(req.Name, req.BasePricePerNight, req.MaxGuests, req.TotalRooms); err != nil {
		s.logger.Warn("Create: validation failed for hotel=%d: %v", req.HotelID, err)
		return nil, err
	}

	if err := s.checkOwnerAccess(ctx, req.HotelID, req.UserID); err != nil {
		return nil, err
	}

	rt := &domain.RoomType{
		HotelID:           req.HotelID,
		Name:              req.Name,
		Description:       req.Description,
		BasePricePerNight: req.BasePricePerNight,
		MaxGuests:         req.MaxGuests,
		TotalRooms:        req.TotalRooms,
		IsActive:          true,
	}

	created, err := s.roomTypeRepo.Create(ctx, rt)
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrDuplicateName) {
			s.logger.Warn("Create: duplicate room type name %q for hotel=%d", req.Name, req.HotelID)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room type id=%d created for hotel=%d", created.ID, req.HotelID)
	return models.FromDomainRoomType(created), nil
}

// Update changes a room type of a hotel the user owns. Changing the rate
// never touches existing bookings: totals are computed once at creation.
func (s *Service) Update(ctx context.Context, roomTypeID int64, req *models.UpdateRequest) (*models.RoomTypeResponse, error) {
	s.logger.Info("Update: updating room type id=%d by user=%d", roomTypeID, req.UserID)

	rt, err := s.roomTypeRepo.GetByID(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
			s.logger.Warn("Update: room type id=%d not found", roomTypeID)
			return nil, ErrRoomTypeNotFound
		}
		s.logger.Error("Update: repository error for room type id=%d: %v", roomTypeID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerAccess(ctx, rt.HotelID, req.UserID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		rt.Name = *req.Name
	}
	if req.Description != nil {
		rt.Description = req.Description
	}
	if req.BasePricePerNight != nil {
		rt.BasePricePerNight = *req.BasePricePerNight
	}
	if req.MaxGuests != nil {
		rt.MaxGuests = *req.MaxGuests
	}
	if req.TotalRooms != nil {
		rt.TotalRooms = *req.TotalRooms
	}
	if req.IsActive != nil {
		rt.IsActive = *req.IsActive
	}

	if err := validateRoomType(rt.Name, rt.BasePricePerNight, rt.MaxGuests, rt.TotalRooms); err != nil {
		s.logger.Warn("Update: validation failed for room type id=%d: %v", roomTypeID, err)
		return nil, err
	}

	if err := s.roomTypeRepo.Update(ctx, rt); err != nil {
		if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		if errors.Is(err, roomTypeRepo.ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		s.logger.Error("Update: repository error for room type id=%d: %v", roomTypeID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: room type id=%d updated", roomTypeID)
	return models.FromDomainRoomType(rt), nil
}

func validateRoomType(name string, basePrice float64, maxGuests, totalRooms int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if basePrice < 0 {
		return fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	}
	if maxGuests < 0 {
		return fmt.Errorf("%w: max guests must not be negative", ErrInvalidInput)
	}
	if totalRooms < 0 {
		return fmt.Errorf("%w: total rooms must not be negative", ErrInvalidInput)
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
