package get_booking_requests

import (
	"time"

	"github.com/travelhub/hotel-booking-service/internal/service/guestrequests/models"
)

// GuestRequestResponse HTTP model of one guest request
type GuestRequestResponse struct {
	ID          int64   `json:"id"`
	BookingID   int64   `json:"booking_id"`
	Type        string  `json:"request_type"`
	Details     string  `json:"details"`
	Priority    string  `json:"priority"`
	Status      string  `json:"request_status"`
	AssignedTo  *int64  `json:"assigned_to,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// GuestRequestListResponse HTTP response model
type GuestRequestListResponse struct {
	Requests []*GuestRequestResponse `json:"requests"`
	Total    int                     `json:"total"`
}

// FromServiceResponse converts the service list to the HTTP model.
func FromServiceResponse(resp *models.RequestListResponse) *GuestRequestListResponse {
	out := make([]*GuestRequestResponse, len(resp.Requests))
	for i, req := range resp.Requests {
		item := &GuestRequestResponse{
			ID:         req.ID,
			BookingID:  req.BookingID,
			Type:       req.Type,
			Details:    req.Details,
			Priority:   req.Priority,
			Status:     req.Status,
			AssignedTo: req.AssignedTo,
			CreatedAt:  req.CreatedAt.Format(time.RFC3339),
			UpdatedAt:  req.UpdatedAt.Format(time.RFC3339),
		}
		if req.CompletedAt != nil {
			completed := req.CompletedAt.Format(time.RFC3339)
			item.CompletedAt = &completed
		}
		out[i] = item
	}
	return &GuestRequestListResponse{Requests: out, Total: resp.Total}
}
