package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three nights",
			checkIn:  date(2026, 9, 1),
			checkOut: date(2026, 9, 4),
			want:     3,
		},
		{
			name:     "one night",
			checkIn:  date(2026, 9, 1),
			checkOut: date(2026, 9, 2),
			want:     1,
		},
		{
			name:     "same day",
			checkIn:  date(2026, 9, 1),
			checkOut: date(2026, 9, 1),
			want:     0,
		},
		{
			name:     "reversed range is negative",
			checkIn:  date(2026, 9, 4),
			checkOut: date(2026, 9, 1),
			want:     -3,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 9, 4, 11, 0, 0, 0, time.UTC),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		nights    int
		numGuests int
		want      float64
	}{
		{
			name:      "rate times nights",
			rate:      100,
			nights:    3,
			numGuests: 2,
			want:      300,
		},
		{
			name:      "guest count does not multiply",
			rate:      100,
			nights:    3,
			numGuests: 4,
			want:      300,
		},
		{
			name:      "single guest same price",
			rate:      100,
			nights:    3,
			numGuests: 1,
			want:      300,
		},
		{
			name:      "zero nights yields zero",
			rate:      100,
			nights:    0,
			numGuests: 2,
			want:      0,
		},
		{
			name:      "negative nights yields zero",
			rate:      100,
			nights:    -2,
			numGuests: 2,
			want:      0,
		},
		{
			name:      "unset rate yields zero",
			rate:      0,
			nights:    3,
			numGuests: 2,
			want:      0,
		},
		{
			name:      "fractional rate",
			rate:      79.5,
			nights:    2,
			numGuests: 3,
			want:      159,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPrice(tt.rate, tt.nights, tt.numGuests))
		})
	}
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 9, 10, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(date(2026, 9, 9), now))
	assert.False(t, IsDateInPast(date(2026, 9, 10), now), "same day is not past")
	assert.False(t, IsDateInPast(date(2026, 9, 11), now))
}
