package models

import (
	"time"

	"github.com/travelhub/hotel-booking-service/internal/domain"
)

// CreateRequest parameters for adding a room type to a hotel
type CreateRequest struct {
	HotelID           int64
	UserID            int64 // requester, must own the hotel
	Name              string
	Description       *string
	BasePricePerNight float64
	MaxGuests         int
	TotalRooms        int
}

// UpdateRequest owner-side changes to a room type; nil fields stay unchanged
type UpdateRequest struct {
	UserID            int64
	Name              *string
	Description       *string
	BasePricePerNight *float64
	MaxGuests         *int
	TotalRooms        *int
	IsActive          *bool
}

// RoomTypeResponse is the service-level view of a room type
type RoomTypeResponse struct {
	ID                int64
	HotelID           int64
	Name              string
	Description       *string
	BasePricePerNight float64
	MaxGuests         int
	TotalRooms        int
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RoomTypeListResponse is a list of room types
type RoomTypeListResponse struct {
	RoomTypes []*RoomTypeResponse
	Total     int
}

// FromDomainRoomType converts a domain room type to the service view.
func FromDomainRoomType(rt *domain.RoomType) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:                rt.ID,
		HotelID:           rt.HotelID,
		Name:              rt.Name,
		Description:       rt.Description,
		BasePricePerNight: rt.BasePricePerNight,
		MaxGuests:         rt.MaxGuests,
		TotalRooms:        rt.TotalRooms,
		IsActive:          rt.IsActive,
		CreatedAt:         rt.CreatedAt,
		UpdatedAt:         rt.UpdatedAt,
	}
}

// FromDomainRoomTypeList converts a list of domain room types.
func FromDomainRoomTypeList(roomTypes []*domain.RoomType) *RoomTypeListResponse {
	out := make([]*RoomTypeResponse, len(roomTypes))
	for i, rt := range roomTypes {
		out[i] = FromDomainRoomType(rt)
	}
	return &RoomTypeListResponse{RoomTypes: out, Total: len(out)}
}
