package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	bookingRepo "github.com/travelhub/hotel-booking-service/internal/infra/storage/booking"
	"github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
	"github.com/travelhub/hotel-booking-service/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings      map[int64]*domain.Booking
	updatedID     int64
	updatedStatus domain.BookingStatus
	updateCalls   int
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m}
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByTravelerID(ctx context.Context, travelerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.TravelerID == travelerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByHotelWithFilter(ctx context.Context, filter domain.HotelBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.HotelID == filter.HotelID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updateCalls++
	f.updatedID = id
	f.updatedStatus = status
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) CountByHotel(ctx context.Context, hotelID int64, status *domain.BookingStatus) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.HotelID != hotelID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeBookingRepo) SumRevenue(ctx context.Context, hotelID int64, statuses []domain.BookingStatus) (float64, error) {
	var sum float64
	for _, b := range f.bookings {
		if b.HotelID != hotelID {
			continue
		}
		for _, s := range statuses {
			if b.Status == s {
				sum += b.TotalPrice
				break
			}
		}
	}
	return sum, nil
}

type fakeHotelClient struct {
	hotel *hotelservice.Hotel
	err   error
}

func (f *fakeHotelClient) GetHotel(ctx context.Context, hotelID int64) (*hotelservice.Hotel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hotel, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const (
	ownerID    = int64(99)
	travelerID = int64(42)
	strangerID = int64(7)
)

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		HotelID:      1,
		TravelerID:   travelerID,
		RoomTypeName: "Deluxe",
		CheckInDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
		NumGuests:    2,
		TotalPrice:   300,
		Status:       status,
	}
}

func newTestService(repo *fakeBookingRepo) *Service {
	return NewService(repo, &fakeHotelClient{hotel: &hotelservice.Hotel{ID: 1, OwnerID: ownerID}}, nopLogger{})
}

func TestUpdateStatusLegalTransition(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.StatusPending))
	svc := newTestService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: ownerID,
		Status: "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatusIllegalTransitionRejected(t *testing.T) {
	tests := []struct {
		name string
		from domain.BookingStatus
		to   string
	}{
		{"pending to checked_in", domain.StatusPending, "checked_in"},
		{"pending to checked_out", domain.StatusPending, "checked_out"},
		{"checked_in to cancelled", domain.StatusCheckedIn, "cancelled"},
		{"checked_out to checked_in", domain.StatusCheckedOut, "checked_in"},
		{"cancelled to confirmed", domain.StatusCancelled, "confirmed"},
		{"confirmed to pending", domain.StatusConfirmed, "pending"},
		{"self transition", domain.StatusConfirmed, "confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo(testBooking(1, tt.from))
			svc := newTestService(repo)

			_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
				UserID: ownerID,
				Status: tt.to,
			})
			assert.ErrorIs(t, err, ErrIllegalTransition)
			assert.Zero(t, repo.updateCalls, "stored state must stay untouched")
		})
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.StatusPending))
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: ownerID,
		Status: "approved",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusRequiresOwner(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.StatusPending))
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: travelerID, // traveler, not the hotel owner
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatusBookingNotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	_, err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		UserID: ownerID,
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelByTraveler(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.StatusConfirmed))
	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: travelerID})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestCancelByOwner(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.StatusPending))
	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: ownerID})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestCancelByStrangerDenied(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.StatusPending))
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: strangerID})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancelPastCancellationPoint(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeBookingRepo(testBooking(1, status))
			svc := newTestService(repo)

			_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: travelerID})
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestGetByIDAccess(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.StatusConfirmed))
	svc := newTestService(repo)

	t.Run("traveler sees own booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, travelerID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("owner sees hotel booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, ownerID)
		assert.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, strangerID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetTravelerBookingsRequiresSelf(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.StatusConfirmed))
	svc := newTestService(repo)

	_, err := svc.GetTravelerBookings(context.Background(), &models.GetTravelerBookingsRequest{
		TravelerID: travelerID,
		UserID:     strangerID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetStatistics(t *testing.T) {
	b1 := testBooking(1, domain.StatusConfirmed)
	b2 := testBooking(2, domain.StatusPending)
	b3 := testBooking(3, domain.StatusCheckedOut)
	b4 := testBooking(4, domain.StatusCancelled)
	repo := newFakeBookingRepo(b1, b2, b3, b4)
	svc := newTestService(repo)

	resp, err := svc.GetStatistics(context.Background(), 1, ownerID)
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.TotalBookings)
	assert.Equal(t, int64(1), resp.ConfirmedBookings)
	assert.Equal(t, int64(1), resp.PendingBookings)
	assert.Equal(t, float64(600), resp.TotalRevenue, "confirmed and checked_out count, cancelled does not")
	assert.Equal(t, float64(25), resp.OccupancyRate)
}
