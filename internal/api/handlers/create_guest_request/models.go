package create_guest_request

import (
	"time"

	"github.com/travelhub/hotel-booking-service/internal/service/guestrequests/models"
)

// CreateGuestRequestRequest HTTP request model
type CreateGuestRequestRequest struct {
	Type     string  `json:"request_type"`
	Details  string  `json:"details"`
	Priority *string `json:"priority,omitempty"`
}

// GuestRequestResponse HTTP response model
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

// ToServiceRequest converts the HTTP request to the service model.
func (r *CreateGuestRequestRequest) ToServiceRequest(bookingID, userID int64) *models.CreateRequest {
	return &models.CreateRequest{
		BookingID: bookingID,
		UserID:    userID,
		Type:      r.Type,
		Details:   r.Details,
		Priority:  r.Priority,
	}
}

// FromServiceResponse converts the service view to the HTTP model.
func FromServiceResponse(resp *models.RequestResponse) *GuestRequestResponse {
	out := &GuestRequestResponse{
		ID:         resp.ID,
		BookingID:  resp.BookingID,
		Type:       resp.Type,
		Details:    resp.Details,
		Priority:   resp.Priority,
		Status:     resp.Status,
		AssignedTo: resp.AssignedTo,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.CompletedAt != nil {
		completed := resp.CompletedAt.Format(time.RFC3339)
		out.CompletedAt = &completed
	}
	return out
}
