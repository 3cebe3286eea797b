package domain

import "time"

// RequestType classifies a guest service request
type RequestType string

const (
	RequestEarlyCheckin RequestType = "early_checkin"
	RequestLateCheckout RequestType = "late_checkout"
	RequestRoomService  RequestType = "room_service"
	RequestHousekeeping RequestType = "housekeeping"
	RequestMaintenance  RequestType = "maintenance"
	RequestOther        RequestType = "other"
)

// Valid reports whether t is a known request type.
func (t RequestType) Valid() bool {
	switch t {
	case RequestEarlyCheckin, RequestLateCheckout, RequestRoomService,
		RequestHousekeeping, RequestMaintenance, RequestOther:
		return true
	}
	return false
}

// RequestPriority is the urgency of a guest request
type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"
	PriorityMedium RequestPriority = "medium"
	PriorityHigh   RequestPriority = "high"
	PriorityUrgent RequestPriority = "urgent"
)

// Valid reports whether p is a known priority.
func (p RequestPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// RequestStatus is the processing state of a guest request
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusRejected   RequestStatus = "rejected"
)

// Valid reports whether s is a known request status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusInProgress, RequestStatusCompleted, RequestStatusRejected:
		return true
	}
	return false
}

// GuestRequest is a service request attached to an existing booking,
// independent of the booking's stay-status lifecycle
type GuestRequest struct {
	ID         int64
	BookingID  int64
	Type       RequestType
	Details    string
	Priority   RequestPriority
	Status     RequestStatus
	AssignedTo *int64

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// IsOpen returns true while the request still needs staff attention.
func (r *GuestRequest) IsOpen() bool {
	return r.Status == RequestStatusPending || r.Status == RequestStatusInProgress
}
