package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelhub/hotel-booking-service/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByHotelWithFilter(ctx context.Context, filter domain.HotelBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeRoomTypeRepo struct {
	roomType *domain.RoomType
	err      error
}

func (f *fakeRoomTypeRepo) GetByHotelAndName(ctx context.Context, hotelID int64, name string) (*domain.RoomType, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roomType, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		HotelID:      7,
		RoomTypeName: "Deluxe",
		StartDate:    date(2026, 9, 15),
		EndDate:      date(2026, 9, 18),
	}
}

func newTestUseCase(bookings []*domain.Booking, roomType *domain.RoomType) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeRoomTypeRepo{roomType: roomType},
		nopLogger{},
	)
}

func TestExecutePerDayAvailability(t *testing.T) {
	roomType := &domain.RoomType{
		HotelID:           7,
		Name:              "Deluxe",
		BasePricePerNight: 100,
		TotalRooms:        2,
	}
	bookings := []*domain.Booking{
		// Occupies the first two nights only.
		{Status: domain.StatusConfirmed, CheckInDate: date(2026, 9, 15), CheckOutDate: date(2026, 9, 17)},
		// Cancelled, frees its room.
		{Status: domain.StatusCancelled, CheckInDate: date(2026, 9, 15), CheckOutDate: date(2026, 9, 18)},
	}

	uc := newTestUseCase(bookings, roomType)
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Days, 3)

	assert.Equal(t, date(2026, 9, 15), resp.Days[0].Date)
	assert.Equal(t, 1, resp.Days[0].AvailableRooms)
	assert.Equal(t, 1, resp.Days[1].AvailableRooms)
	assert.Equal(t, 2, resp.Days[2].AvailableRooms, "third night is free")

	for _, day := range resp.Days {
		assert.Equal(t, 2, day.TotalRooms)
		assert.Equal(t, float64(100), day.PricePerNight)
	}
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(nil, &domain.RoomType{TotalRooms: 1})

	t.Run("missing room type", func(t *testing.T) {
		req := validRequest()
		req.RoomTypeName = ""
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("missing dates", func(t *testing.T) {
		req := validRequest()
		req.StartDate = time.Time{}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("end before start", func(t *testing.T) {
		req := validRequest()
		req.StartDate = date(2026, 9, 18)
		req.EndDate = date(2026, 9, 15)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestExecuteOverbookedClampsToZero(t *testing.T) {
	roomType := &domain.RoomType{TotalRooms: 1, BasePricePerNight: 50}
	bookings := []*domain.Booking{
		{Status: domain.StatusConfirmed, CheckInDate: date(2026, 9, 15), CheckOutDate: date(2026, 9, 18)},
		{Status: domain.StatusConfirmed, CheckInDate: date(2026, 9, 15), CheckOutDate: date(2026, 9, 18)},
	}

	uc := newTestUseCase(bookings, roomType)
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	for _, day := range resp.Days {
		assert.Equal(t, 0, day.AvailableRooms)
	}
}
