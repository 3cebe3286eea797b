package hotelservice

// Hotel is the hotel catalog record as served by the hotel service
type Hotel struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	OwnerID       int64  `json:"owner_id"`
	DestinationID int64  `json:"destination_id"`
	Address       string `json:"address"`
}

// IsOwnedBy reports whether the given user owns this hotel.
func (h *Hotel) IsOwnedBy(userID int64) bool {
	return h.OwnerID == userID
}

// ErrorResponse is the error payload returned by the hotel service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
