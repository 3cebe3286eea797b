package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	"github.com/travelhub/hotel-booking-service/pkg/ptr"
)

var testNow = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		TravelerID:   42,
		HotelID:      7,
		RoomTypeName: "Deluxe",
		CheckInDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
		NumGuests:    2,
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validateRequest(validRequest(), testNow))
	})

	t.Run("missing room type", func(t *testing.T) {
		req := validRequest()
		req.RoomTypeName = ""
		assert.ErrorIs(t, validateRequest(req, testNow), ErrMissingField)
	})

	t.Run("missing check-in date", func(t *testing.T) {
		req := validRequest()
		req.CheckInDate = time.Time{}
		assert.ErrorIs(t, validateRequest(req, testNow), ErrMissingField)
	})

	t.Run("missing check-out date", func(t *testing.T) {
		req := validRequest()
		req.CheckOutDate = time.Time{}
		assert.ErrorIs(t, validateRequest(req, testNow), ErrMissingField)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		req := validRequest()
		req.CheckInDate = time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)
		req.CheckOutDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidDateRange)
	})

	t.Run("check-out equal to check-in", func(t *testing.T) {
		req := validRequest()
		req.CheckOutDate = req.CheckInDate
		assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidDateRange)
	})

	t.Run("past check-in date", func(t *testing.T) {
		req := validRequest()
		req.CheckInDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		req.CheckOutDate = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, validateRequest(req, testNow), ErrPastDate)
	})

	t.Run("check-in today is allowed", func(t *testing.T) {
		req := validRequest()
		req.CheckInDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		req.CheckOutDate = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
		assert.NoError(t, validateRequest(req, testNow))
	})

	t.Run("zero guests", func(t *testing.T) {
		req := validRequest()
		req.NumGuests = 0
		assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidGuestCount)
	})

	t.Run("missing field reported before bad date range", func(t *testing.T) {
		// A request broken in several ways reports the earliest check:
		// missing field, then date range, then past date.
		req := validRequest()
		req.RoomTypeName = ""
		req.CheckInDate = time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)
		req.CheckOutDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, validateRequest(req, testNow), ErrMissingField)
	})

	t.Run("date range reported before past date", func(t *testing.T) {
		req := validRequest()
		req.CheckInDate = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
		req.CheckOutDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, validateRequest(req, testNow), ErrInvalidDateRange)
	})

	t.Run("special requests over the limit", func(t *testing.T) {
		long := make([]byte, domain.MaxSpecialRequestsLength+1)
		for i := range long {
			long[i] = 'a'
		}
		req := validRequest()
		req.SpecialRequests = ptr.Ptr(string(long))
		assert.ErrorIs(t, validateRequest(req, testNow), ErrSpecialRequestsTooLong)
	})
}

func TestCountMaxOccupancy(t *testing.T) {
	checkIn := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)

	mk := func(status domain.BookingStatus, in, out time.Time) *domain.Booking {
		return &domain.Booking{Status: status, CheckInDate: in, CheckOutDate: out}
	}

	t.Run("no bookings", func(t *testing.T) {
		assert.Equal(t, 0, countMaxOccupancy(checkIn, checkOut, nil))
	})

	t.Run("full overlap counts every night", func(t *testing.T) {
		bookings := []*domain.Booking{
			mk(domain.StatusConfirmed, checkIn, checkOut),
			mk(domain.StatusPending, checkIn, checkOut),
		}
		assert.Equal(t, 2, countMaxOccupancy(checkIn, checkOut, bookings))
	})

	t.Run("inactive bookings do not occupy", func(t *testing.T) {
		bookings := []*domain.Booking{
			mk(domain.StatusCancelled, checkIn, checkOut),
			mk(domain.StatusCheckedOut, checkIn, checkOut),
			mk(domain.StatusConfirmed, checkIn, checkOut),
		}
		assert.Equal(t, 1, countMaxOccupancy(checkIn, checkOut, bookings))
	})

	t.Run("peak night decides", func(t *testing.T) {
		// Two bookings overlap only on the middle night.
		bookings := []*domain.Booking{
			mk(domain.StatusConfirmed,
				time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC)),
			mk(domain.StatusConfirmed,
				time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)),
		}
		assert.Equal(t, 2, countMaxOccupancy(checkIn, checkOut, bookings))
	})

	t.Run("back to back bookings do not overlap", func(t *testing.T) {
		bookings := []*domain.Booking{
			mk(domain.StatusConfirmed,
				time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)),
		}
		assert.Equal(t, 0, countMaxOccupancy(checkIn, checkOut, bookings))
	})
}
