package create_booking

import (
	"fmt"
	"time"

	"github.com/travelhub/hotel-booking-service/internal/domain"
)

// validateRequest checks the request in a fixed order: missing fields
// first, then the date range, then the past-date check. A request with
// several problems always reports the earliest one in that order.
func validateRequest(req *Request, now time.Time) error {
	if req.TravelerID <= 0 {
		return fmt.Errorf("%w: travelerID must be positive", ErrMissingField)
	}

	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrMissingField)
	}

	if req.RoomTypeName == "" {
		return fmt.Errorf("%w: roomTypeName is required", ErrMissingField)
	}

	if req.CheckInDate.IsZero() {
		return fmt.Errorf("%w: checkInDate is required", ErrMissingField)
	}

	if req.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: checkOutDate is required", ErrMissingField)
	}

	if !req.CheckOutDate.After(req.CheckInDate) {
		return ErrInvalidDateRange
	}

	if domain.IsDateInPast(req.CheckInDate, now) {
		return ErrPastDate
	}

	if req.NumGuests < domain.MinGuestsPerBooking {
		return fmt.Errorf("%w: at least %d guest required", ErrInvalidGuestCount, domain.MinGuestsPerBooking)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: limit is %d characters", ErrSpecialRequestsTooLong, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// countMaxOccupancy returns the largest number of rooms of the stay's room
// type occupied on any single night of [checkIn, checkOut). Bookings that
// are cancelled or checked out do not occupy rooms.
func countMaxOccupancy(checkIn, checkOut time.Time, bookings []*domain.Booking) int {
	maxCount := 0

	for night := domain.DateOnly(checkIn); night.Before(domain.DateOnly(checkOut)); night = night.AddDate(0, 0, 1) {
		count := 0
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			if b.OccupiesNight(night) {
				count++
			}
		}
		if count > maxCount {
			maxCount = count
		}
	}

	return maxCount
}
