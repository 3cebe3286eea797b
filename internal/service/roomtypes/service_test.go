package roomtypes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelhub/hotel-booking-service/internal/domain"
	roomTypeRepo "github.com/travelhub/hotel-booking-service/internal/infra/storage/roomtype"
	"github.com/travelhub/hotel-booking-service/internal/integrations/hotelservice"
	"github.com/travelhub/hotel-booking-service/internal/service/roomtypes/models"
	"github.com/travelhub/hotel-booking-service/pkg/ptr"
)

type fakeRoomTypeRepo struct {
	roomTypes map[int64]*domain.RoomType
	createErr error
	nextID    int64
	updated   *domain.RoomType
}

func newFakeRoomTypeRepo(roomTypes ...*domain.RoomType) *fakeRoomTypeRepo {
	m := make(map[int64]*domain.RoomType, len(roomTypes))
	for _, rt := range roomTypes {
		m[rt.ID] = rt
	}
	return &fakeRoomTypeRepo{roomTypes: m, nextID: 10}
}

func (f *fakeRoomTypeRepo) GetByHotelID(ctx context.Context, hotelID int64) ([]*domain.RoomType, error) {
	var out []*domain.RoomType
	for _, rt := range f.roomTypes {
		if rt.HotelID == hotelID && rt.IsActive {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (f *fakeRoomTypeRepo) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	rt, ok := f.roomTypes[id]
	if !ok {
		return nil, roomTypeRepo.ErrRoomTypeNotFound
	}
	copied := *rt
	return &copied, nil
}

func (f *fakeRoomTypeRepo) Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *rt
	created.ID = f.nextID
	f.roomTypes[created.ID] = &created
	return &created, nil
}

func (f *fakeRoomTypeRepo) Update(ctx context.Context, rt *domain.RoomType) error {
	if _, ok := f.roomTypes[rt.ID]; !ok {
		return roomTypeRepo.ErrRoomTypeNotFound
	}
	copied := *rt
	f.roomTypes[rt.ID] = &copied
	f.updated = &copied
	return nil
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

const ownerID = int64(99)

func newTestService(repo *fakeRoomTypeRepo) *Service {
	return NewService(repo, &fakeHotelClient{hotel: &hotelservice.Hotel{ID: 1, OwnerID: ownerID}}, nopLogger{})
}

func deluxe(id int64) *domain.RoomType {
	return &domain.RoomType{
		ID:                id,
		HotelID:           1,
		Name:              "Deluxe",
		BasePricePerNight: 100,
		MaxGuests:         4,
		TotalRooms:        2,
		IsActive:          true,
	}
}

func TestListByHotelReturnsActiveOnly(t *testing.T) {
	active := deluxe(1)
	retired := deluxe(2)
	retired.Name = "Old Suite"
	retired.IsActive = false

	svc := newTestService(newFakeRoomTypeRepo(active, retired))

	resp, err := svc.ListByHotel(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Deluxe", resp.RoomTypes[0].Name)
}

func TestCreate(t *testing.T) {
	repo := newFakeRoomTypeRepo()
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), &models.CreateRequest{
		HotelID:           1,
		UserID:            ownerID,
		Name:              "Suite",
		BasePricePerNight: 250,
		MaxGuests:         3,
		TotalRooms:        5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.True(t, resp.IsActive, "new room types start active")
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(newFakeRoomTypeRepo())

	tests := []struct {
		name string
		req  models.CreateRequest
	}{
		{"empty name", models.CreateRequest{HotelID: 1, UserID: ownerID}},
		{"negative price", models.CreateRequest{HotelID: 1, UserID: ownerID, Name: "Suite", BasePricePerNight: -1}},
		{"negative rooms", models.CreateRequest{HotelID: 1, UserID: ownerID, Name: "Suite", TotalRooms: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateRequiresOwner(t *testing.T) {
	svc := newTestService(newFakeRoomTypeRepo())

	_, err := svc.Create(context.Background(), &models.CreateRequest{
		HotelID: 1,
		UserID:  7, // not the owner
		Name:    "Suite",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreateDuplicateName(t *testing.T) {
	repo := newFakeRoomTypeRepo()
	repo.createErr = roomTypeRepo.ErrDuplicateName
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &models.CreateRequest{
		HotelID: 1,
		UserID:  ownerID,
		Name:    "Deluxe",
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := newFakeRoomTypeRepo(deluxe(1))
	svc := newTestService(repo)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateRequest{
		UserID:            ownerID,
		BasePricePerNight: ptr.Ptr(150.0),
		IsActive:          ptr.Ptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, float64(150), resp.BasePricePerNight)
	assert.False(t, resp.IsActive)
	assert.Equal(t, "Deluxe", resp.Name, "unset fields keep their values")
	assert.Equal(t, 2, resp.TotalRooms)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService(newFakeRoomTypeRepo())

	_, err := svc.Update(context.Background(), 5, &models.UpdateRequest{UserID: ownerID})
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestUpdateRequiresOwner(t *testing.T) {
	svc := newTestService(newFakeRoomTypeRepo(deluxe(1)))

	_, err := svc.Update(context.Background(), 1, &models.UpdateRequest{
		UserID: 7,
		Name:   ptr.Ptr("Budget"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateRevalidates(t *testing.T) {
	repo := newFakeRoomTypeRepo(deluxe(1))
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 1, &models.UpdateRequest{
		UserID:            ownerID,
		BasePricePerNight: ptr.Ptr(-10.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.updated)
}
