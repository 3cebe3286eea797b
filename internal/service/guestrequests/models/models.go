package models

import (
	"time"

	"github.com/travelhub/hotel-booking-service/internal/domain"
)

// CreateRequest parameters for attaching a request to a booking
type CreateRequest struct {
	BookingID int64
	UserID    int64 // requester, must own the booking
	Type      string
	Details   string
	Priority  *string // defaults to medium
}

// UpdateRequest staff-side changes to a guest request
type UpdateRequest struct {
	UserID     int64 // requester, must own the hotel
	Status     *string
	Priority   *string
	AssignedTo *int64
}

// RequestResponse is the service-level view of a guest request
type RequestResponse struct {
	ID          int64
	BookingID   int64
	Type        string
	Details     string
	Priority    string
	Status      string
	AssignedTo  *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// RequestListResponse is a list of guest requests
type RequestListResponse struct {
	Requests []*RequestResponse
	Total    int
}

// FromDomainRequest converts a domain guest request to the service view.
func FromDomainRequest(r *domain.GuestRequest) *RequestResponse {
	return &RequestResponse{
		ID:          r.ID,
		BookingID:   r.BookingID,
		Type:        string(r.Type),
		Details:     r.Details,
		Priority:    string(r.Priority),
		Status:      string(r.Status),
		AssignedTo:  r.AssignedTo,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CompletedAt: r.CompletedAt,
	}
}

// FromDomainRequestList converts a list of domain guest requests.
func FromDomainRequestList(requests []*domain.GuestRequest) *RequestListResponse {
	out := make([]*RequestResponse, len(requests))
	for i, r := range requests {
		out[i] = FromDomainRequest(r)
	}
	return &RequestListResponse{Requests: out, Total: len(out)}
}
