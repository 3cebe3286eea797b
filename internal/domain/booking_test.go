package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCheckedIn, false},
		{StatusPending, StatusCheckedOut, false},

		{StatusConfirmed, StatusCheckedIn, true},
		{StatusConfirmed, StatusCheckedOut, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},

		{StatusCheckedIn, StatusCheckedOut, true},
		{StatusCheckedIn, StatusCancelled, false},
		{StatusCheckedIn, StatusConfirmed, false},

		{StatusCheckedOut, StatusCheckedIn, false},
		{StatusCheckedOut, StatusCancelled, false},
		{StatusCheckedOut, StatusPending, false},

		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},

		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusCheckedIn.IsTerminal())
	assert.True(t, StatusCheckedOut.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, BookingStatus("unknown").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestBookingCanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCheckedIn}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCheckedOut}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCheckedIn}).IsActive())
	assert.False(t, (&Booking{Status: StatusCheckedOut}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBookingOccupiesNight(t *testing.T) {
	b := &Booking{
		CheckInDate:  date(2026, 9, 1),
		CheckOutDate: date(2026, 9, 4),
	}

	assert.False(t, b.OccupiesNight(date(2026, 8, 31)))
	assert.True(t, b.OccupiesNight(date(2026, 9, 1)))
	assert.True(t, b.OccupiesNight(date(2026, 9, 2)))
	assert.True(t, b.OccupiesNight(date(2026, 9, 3)))
	assert.False(t, b.OccupiesNight(date(2026, 9, 4)), "check-out day is free")
}

func TestBookingNights(t *testing.T) {
	b := &Booking{
		CheckInDate:  date(2026, 9, 1),
		CheckOutDate: date(2026, 9, 4),
	}
	assert.Equal(t, 3, b.Nights())
}
