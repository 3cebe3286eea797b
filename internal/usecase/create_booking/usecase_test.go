package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	"github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
	"github.com/travelhub/hotel-booking-service/internal/integrations/travelerservice"
)

type fakeBookingRepo struct {
	overlapping []*domain.Booking
	created     *domain.Booking
	nextID      int64
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.ID = f.nextID
	created.CreatedAt = testNow
	created.UpdatedAt = testNow
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByHotelWithFilter(ctx context.Context, filter domain.HotelBookingsFilter) ([]*domain.Booking, error) {
	return f.overlapping, nil
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

type fakeTravelerClient struct {
	user *travelerservice.User
	err  error
}

func (f *fakeTravelerClient) GetUser(ctx context.Context, userID int64) (*travelerservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(bookingRepo *fakeBookingRepo, roomTypeRepo *fakeRoomTypeRepo,
	hotelClient *fakeHotelClient, travelerClient *fakeTravelerClient) *UseCase {

	uc := NewUseCase(bookingRepo, roomTypeRepo, hotelClient, travelerClient,
		&fakeTxManager{}, domain.DefaultMaxGuestsPerBooking, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func defaultFakes() (*fakeBookingRepo, *fakeRoomTypeRepo, *fakeHotelClient, *fakeTravelerClient) {
	bookingRepo := &fakeBookingRepo{nextID: 101}
	roomTypeRepo := &fakeRoomTypeRepo{
		roomType: &domain.RoomType{
			ID:                1,
			HotelID:           7,
			Name:              "Deluxe",
			BasePricePerNight: 100,
			MaxGuests:         4,
			TotalRooms:        2,
			IsActive:          true,
		},
	}
	hotelClient := &fakeHotelClient{hotel: &hotelservice.Hotel{ID: 7, OwnerID: 99}}
	travelerClient := &fakeTravelerClient{
		user: &travelerservice.User{ID: 42, Role: travelerservice.RoleTraveler},
	}
	return bookingRepo, roomTypeRepo, hotelClient, travelerClient
}

func TestExecuteCreatesPendingBooking(t *testing.T) {
	bookingRepo, roomTypeRepo, hotelClient, travelerClient := defaultFakes()
	uc := newTestUseCase(bookingRepo, roomTypeRepo, hotelClient, travelerClient)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, float64(300), resp.TotalPrice, "100 per night for 3 nights")
	assert.NotEmpty(t, resp.ConfirmationCode)

	require.NotNil(t, bookingRepo.created)
	assert.Equal(t, domain.StatusPending, bookingRepo.created.Status)
	assert.Equal(t, int64(42), bookingRepo.created.TravelerID)
}

func TestExecuteGuestCountDoesNotChangePrice(t *testing.T) {
	bookingRepo, roomTypeRepo, hotelClient, travelerClient := defaultFakes()
	uc := newTestUseCase(bookingRepo, roomTypeRepo, hotelClient, travelerClient)

	req := validRequest()
	req.NumGuests = 4

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, float64(300), resp.TotalPrice)
}

func TestExecuteRejectsNonTraveler(t *testing.T) {
	bookingRepo, roomTypeRepo, hotelClient, travelerClient := defaultFakes()
	travelerClient.user = &travelerservice.User{ID: 42, Role: travelerservice.RoleHotelOwner}
	uc := newTestUseCase(bookingRepo, roomTypeRepo, hotelClient, travelerClient)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTravelerRoleRequired)
	assert.Nil(t, bookingRepo.created)
}

func TestExecuteHotelNotFound(t *testing.T) {
	bookingRepo, roomTypeRepo, hotelClient, travelerClient := defaultFakes()
	hotelClient.err = hotelservice.ErrHotelNotFound
	uc := newTestUseCase(bookingRepo, roomTypeRepo, hotelClient, travelerClient)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestExecuteRoomTypeInactive(t *testing.T) {
	bookingRepo, roomTypeRepo, hotelClient, travelerClient := defaultFakes()
	roomTypeRepo.roomType.IsActive = false
	uc := newTestUseCase(bookingRepo, roomTypeRepo, hotelClient, travelerClient)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomTypeInactive)
}

func TestExecuteGuestLimitFromRoomType(t *testing.T) {
	bookingRepo, roomTypeRepo, hotelClient, travelerClient := defaultFakes()
	uc := newTestUseCase(bookingRepo, roomTypeRepo, hotelClient, travelerClient)

	req := validRequest()
	req.NumGuests = 5 // room type allows 4

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)
}

func TestExecuteNoRoomsAvailable(t *testing.T) {
	bookingRepo, roomTypeRepo, hotelClient, travelerClient := defaultFakes()
	req := validRequest()

	// Both rooms taken on every night of the stay.
	bookingRepo.overlapping = []*domain.Booking{
		{Status: domain.StatusConfirmed, CheckInDate: req.CheckInDate, CheckOutDate: req.CheckOutDate},
		{Status: domain.StatusPending, CheckInDate: req.CheckInDate, CheckOutDate: req.CheckOutDate},
	}
	uc := newTestUseCase(bookingRepo, roomTypeRepo, hotelClient, travelerClient)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoRoomsAvailable)
	assert.Nil(t, bookingRepo.created)
}

func TestExecuteCancelledBookingsFreeRooms(t *testing.T) {
	bookingRepo, roomTypeRepo, hotelClient, travelerClient := defaultFakes()
	req := validRequest()

	bookingRepo.overlapping = []*domain.Booking{
		{Status: domain.StatusCancelled, CheckInDate: req.CheckInDate, CheckOutDate: req.CheckOutDate},
		{Status: domain.StatusConfirmed, CheckInDate: req.CheckInDate, CheckOutDate: req.CheckOutDate},
	}
	uc := newTestUseCase(bookingRepo, roomTypeRepo, hotelClient, travelerClient)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestExecuteUntrackedInventorySkipsAvailability(t *testing.T) {
	bookingRepo, roomTypeRepo, hotelClient, travelerClient := defaultFakes()
	roomTypeRepo.roomType.TotalRooms = 0
	req := validRequest()

	// Overlaps that would block a tracked room type.
	bookingRepo.overlapping = []*domain.Booking{
		{Status: domain.StatusConfirmed, CheckInDate: req.CheckInDate, CheckOutDate: req.CheckOutDate},
		{Status: domain.StatusConfirmed, CheckInDate: req.CheckInDate, CheckOutDate: req.CheckOutDate},
		{Status: domain.StatusConfirmed, CheckInDate: req.CheckInDate, CheckOutDate: req.CheckOutDate},
	}
	uc := newTestUseCase(bookingRepo, roomTypeRepo, hotelClient, travelerClient)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecuteZeroRateYieldsZeroTotal(t *testing.T) {
	bookingRepo, roomTypeRepo, hotelClient, travelerClient := defaultFakes()
	roomTypeRepo.roomType.BasePricePerNight = 0
	uc := newTestUseCase(bookingRepo, roomTypeRepo, hotelClient, travelerClient)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, float64(0), resp.TotalPrice)
}
