package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelhub/hotel-booking-service/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func bookingRow(b *domain.Booking) *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns).AddRow(
		b.ID, b.HotelID, b.TravelerID, b.RoomTypeName,
		b.CheckInDate, b.CheckOutDate, b.NumGuests, b.TotalPrice,
		b.Status, b.SpecialRequests, b.ConfirmationCode,
		b.CreatedAt, b.UpdatedAt,
	)
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:               1,
		HotelID:          7,
		TravelerID:       42,
		RoomTypeName:     "Deluxe",
		CheckInDate:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		CheckOutDate:     time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
		NumGuests:        2,
		TotalPrice:       300,
		Status:           domain.StatusPending,
		ConfirmationCode: "BK-A1B2C3",
		CreatedAt:        time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepository(t)
	b := sampleBooking()
	b.ID = 0

	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(b.HotelID, b.TravelerID, b.RoomTypeName, b.CheckInDate, b.CheckOutDate,
			b.NumGuests, b.TotalPrice, b.Status, b.SpecialRequests, b.ConfirmationCode).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), now, now))

	created, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	b := sampleBooking()

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs(b.ID).
		WillReturnRows(bookingRow(b))

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, b.RoomTypeName, got.RoomTypeName)
	assert.Equal(t, b.Status, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByTravelerID(t *testing.T) {
	repo, mock := newMockRepository(t)
	b := sampleBooking()

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE traveler_id = \$1 ORDER BY check_in_date DESC, id DESC`).
		WithArgs(b.TravelerID).
		WillReturnRows(bookingRow(b))

	got, err := repo.GetByTravelerID(context.Background(), b.TravelerID, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByHotelWithFilterExcludesInactive(t *testing.T) {
	repo, mock := newMockRepository(t)
	b := sampleBooking()

	// Without an explicit status filter, cancelled and checked_out rows
	// are excluded.
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE hotel_id = \$1 AND status NOT IN \(\$2,\$3\)`).
		WithArgs(b.HotelID, string(domain.StatusCancelled), string(domain.StatusCheckedOut)).
		WillReturnRows(bookingRow(b))

	got, err := repo.GetByHotelWithFilter(context.Background(), domain.HotelBookingsFilter{HotelID: b.HotelID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(domain.StatusConfirmed, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 1, domain.StatusConfirmed)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(domain.StatusConfirmed, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 5, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByHotel(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE hotel_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountByHotel(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSumRevenue(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_price\), 0\) FROM bookings WHERE hotel_id = \$1 AND status IN \(\$2,\$3,\$4\)`).
		WithArgs(int64(7),
			string(domain.StatusConfirmed),
			string(domain.StatusCheckedIn),
			string(domain.StatusCheckedOut)).
		WillReturnRows(sqlmock.NewRows([]string{"revenue"}).AddRow(600.0))

	revenue, err := repo.SumRevenue(context.Background(), 7, domain.RevenueStatuses)
	require.NoError(t, err)
	assert.Equal(t, float64(600), revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
